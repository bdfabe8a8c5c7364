package repository

import (
	"strings"

	"payboard/internal/contract"
	"payboard/internal/domain/entity"
	"payboard/internal/utils"

	"gorm.io/gorm"
)

// boardQuery feeds the admin board listing; soft-deleted boards never
// show up regardless of the search term.
var boardQuery = QueryConfig{
	From: "kanban_boards b",
	Columns: `b.id, b.user_id, b.title, b.description, b.color,
		b.is_active, b.position, b.created_at, b.updated_at`,
	IDColumn: "b.id",
	OrderBy:  "b.position ASC, b.created_at ASC",
	Where:    "b.is_active = 1",
	Searchable: []SearchField{
		{Expr: "b.title", Op: OpContains},
		{Expr: "b.description", Op: OpContains},
	},
}

type KanbanRepository struct {
	db *gorm.DB
}

func NewKanbanRepository(db *gorm.DB) *KanbanRepository {
	return &KanbanRepository{db: db}
}

// ==== BOARDS ====

func (r *KanbanRepository) GetBoardsPaginated(find string, page, pageSize int) (*Page[entity.Board], error) {
	return GetPaginated[entity.Board](r.db, boardQuery, find, page, pageSize)
}

func (r *KanbanRepository) CreateBoard(userID int32, req *contract.CreateBoardRequest) (*entity.Board, error) {
	const query = `
		INSERT INTO kanban_boards (user_id, title, description, color, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING *`

	now := utils.NowUTC()
	var out entity.Board
	res := r.db.Raw(query, userID, req.Title, req.Description, req.Color, now, now).Scan(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *KanbanRepository) GetBoardsByUser(userID int32) ([]entity.Board, error) {
	var boards []entity.Board
	err := r.db.Raw(`
		SELECT * FROM kanban_boards
		WHERE user_id = ? AND is_active = 1
		ORDER BY position ASC, created_at ASC`, userID).Scan(&boards).Error
	if err != nil {
		return nil, err
	}
	return boards, nil
}

func (r *KanbanRepository) GetBoardByID(boardID, userID int32) (*entity.Board, error) {
	var boards []entity.Board
	err := r.db.Raw(`
		SELECT * FROM kanban_boards
		WHERE id = ? AND user_id = ? AND is_active = 1
		LIMIT 1`, boardID, userID).Scan(&boards).Error
	if err != nil {
		return nil, err
	}
	if len(boards) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &boards[0], nil
}

func (r *KanbanRepository) UpdateBoard(boardID, userID int32, req *contract.UpdateBoardRequest) (*entity.Board, error) {
	const query = `
		UPDATE kanban_boards
		SET
			title = COALESCE(?, title),
			description = COALESCE(?, description),
			color = COALESCE(?, color),
			position = COALESCE(?, position),
			is_active = COALESCE(?, is_active),
			updated_at = ?
		WHERE id = ? AND user_id = ?
		RETURNING *`

	var out entity.Board
	res := r.db.Raw(query,
		req.Title, req.Description, req.Color, req.Position, req.IsActive,
		utils.NowUTC(), boardID, userID,
	).Scan(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &out, nil
}

func (r *KanbanRepository) SoftDeleteBoard(boardID, userID int32) error {
	res := r.db.Exec(`
		UPDATE kanban_boards
		SET is_active = 0, updated_at = ?
		WHERE id = ? AND user_id = ?`, utils.NowUTC(), boardID, userID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ==== COLUMNS ====

func (r *KanbanRepository) CreateColumn(boardID int32, req *contract.CreateColumnRequest) (*entity.Column, error) {
	// Append at the end of the board's column ordering.
	var next int32
	err := r.db.Raw(
		`SELECT COALESCE(MAX(position), -1) + 1 FROM kanban_columns WHERE board_id = ?`,
		boardID,
	).Scan(&next).Error
	if err != nil {
		return nil, err
	}

	const query = `
		INSERT INTO kanban_columns (board_id, title, position, color, max_cards, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING *`

	now := utils.NowUTC()
	var out entity.Column
	res := r.db.Raw(query, boardID, req.Title, next, req.Color, req.MaxCards, now, now).Scan(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *KanbanRepository) GetColumnsByBoard(boardID int32) ([]entity.Column, error) {
	var columns []entity.Column
	err := r.db.Raw(`
		SELECT * FROM kanban_columns
		WHERE board_id = ? AND is_active = 1
		ORDER BY position ASC`, boardID).Scan(&columns).Error
	if err != nil {
		return nil, err
	}
	return columns, nil
}

func (r *KanbanRepository) UpdateColumn(columnID int32, req *contract.UpdateColumnRequest) (*entity.Column, error) {
	const query = `
		UPDATE kanban_columns
		SET
			title = COALESCE(?, title),
			position = COALESCE(?, position),
			color = COALESCE(?, color),
			max_cards = COALESCE(?, max_cards),
			is_active = COALESCE(?, is_active),
			updated_at = ?
		WHERE id = ?
		RETURNING *`

	var out entity.Column
	res := r.db.Raw(query,
		req.Title, req.Position, req.Color, req.MaxCards, req.IsActive,
		utils.NowUTC(), columnID,
	).Scan(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &out, nil
}

func (r *KanbanRepository) SoftDeleteColumn(columnID int32) error {
	res := r.db.Exec(`
		UPDATE kanban_columns
		SET is_active = 0, updated_at = ?
		WHERE id = ?`, utils.NowUTC(), columnID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ==== CARDS ====

func (r *KanbanRepository) CreateCard(columnID int32, req *contract.CreateCardRequest) (*entity.Card, error) {
	var next int32
	err := r.db.Raw(
		`SELECT COALESCE(MAX(position), -1) + 1 FROM kanban_cards WHERE column_id = ?`,
		columnID,
	).Scan(&next).Error
	if err != nil {
		return nil, err
	}

	priority := "medium"
	if req.Priority != nil {
		priority = *req.Priority
	}

	const query = `
		INSERT INTO kanban_cards (column_id, title, description, priority, tags, color, position, due_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING *`

	now := utils.NowUTC()
	var out entity.Card
	res := r.db.Raw(query,
		columnID, req.Title, req.Description, priority, joinTags(req.Tags),
		req.Color, next, req.DueDate, now, now,
	).Scan(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *KanbanRepository) GetCardsByColumn(columnID int32) ([]entity.Card, error) {
	var cards []entity.Card
	err := r.db.Raw(`
		SELECT * FROM kanban_cards
		WHERE column_id = ? AND is_archived = 0
		ORDER BY position ASC`, columnID).Scan(&cards).Error
	if err != nil {
		return nil, err
	}
	return cards, nil
}

func (r *KanbanRepository) GetCardByID(cardID int32) (*entity.Card, error) {
	var cards []entity.Card
	err := r.db.Raw(`SELECT * FROM kanban_cards WHERE id = ? LIMIT 1`, cardID).Scan(&cards).Error
	if err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &cards[0], nil
}

func (r *KanbanRepository) UpdateCard(cardID int32, req *contract.UpdateCardRequest) (*entity.Card, error) {
	// Tags keep their stored value only when the field is absent; an empty
	// list clears them.
	var tags any
	if req.Tags != nil {
		tags = joinTags(req.Tags)
	}

	const query = `
		UPDATE kanban_cards
		SET
			column_id = COALESCE(?, column_id),
			title = COALESCE(?, title),
			description = COALESCE(?, description),
			priority = COALESCE(?, priority),
			tags = COALESCE(?, tags),
			color = COALESCE(?, color),
			position = COALESCE(?, position),
			due_date = COALESCE(?, due_date),
			completed_at = COALESCE(?, completed_at),
			is_archived = COALESCE(?, is_archived),
			updated_at = ?
		WHERE id = ?
		RETURNING *`

	var out entity.Card
	res := r.db.Raw(query,
		req.ColumnID, req.Title, req.Description, req.Priority, tags,
		req.Color, req.Position, req.DueDate, req.CompletedAt, req.IsArchived,
		utils.NowUTC(), cardID,
	).Scan(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &out, nil
}

func (r *KanbanRepository) MoveCard(cardID int32, req *contract.MoveCardRequest) (*entity.Card, error) {
	const query = `
		UPDATE kanban_cards
		SET column_id = ?, position = ?, updated_at = ?
		WHERE id = ?
		RETURNING *`

	var out entity.Card
	res := r.db.Raw(query, req.ColumnID, req.Position, utils.NowUTC(), cardID).Scan(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &out, nil
}

func (r *KanbanRepository) ArchiveCard(cardID int32) error {
	res := r.db.Exec(`
		UPDATE kanban_cards
		SET is_archived = 1, updated_at = ?
		WHERE id = ?`, utils.NowUTC(), cardID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ==== COMMENTS ====

func (r *KanbanRepository) CreateComment(cardID, userID int32, req *contract.CreateCommentRequest) (*entity.Comment, error) {
	const query = `
		INSERT INTO kanban_comments (card_id, user_id, content, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING *`

	now := utils.NowUTC()
	var out entity.Comment
	res := r.db.Raw(query, cardID, userID, req.Content, now, now).Scan(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *KanbanRepository) GetCommentsByCard(cardID int32) ([]entity.Comment, error) {
	var comments []entity.Comment
	err := r.db.Raw(`
		SELECT * FROM kanban_comments
		WHERE card_id = ?
		ORDER BY created_at ASC`, cardID).Scan(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// ==== ATTACHMENTS ====

func (r *KanbanRepository) CreateAttachment(a *entity.Attachment) (*entity.Attachment, error) {
	const query = `
		INSERT INTO kanban_attachments (card_id, filename, original_filename, file_size, mime_type, uploaded_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING *`

	var out entity.Attachment
	res := r.db.Raw(query,
		a.CardID, a.Filename, a.OriginalFilename, a.FileSize,
		a.MimeType, a.UploadedBy, utils.NowUTC(),
	).Scan(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *KanbanRepository) GetAttachmentsByCard(cardID int32) ([]entity.Attachment, error) {
	var attachments []entity.Attachment
	err := r.db.Raw(`
		SELECT * FROM kanban_attachments
		WHERE card_id = ?
		ORDER BY created_at ASC`, cardID).Scan(&attachments).Error
	if err != nil {
		return nil, err
	}
	return attachments, nil
}

func (r *KanbanRepository) GetAttachmentByID(attachmentID int32) (*entity.Attachment, error) {
	var attachments []entity.Attachment
	err := r.db.Raw(`SELECT * FROM kanban_attachments WHERE id = ? LIMIT 1`, attachmentID).Scan(&attachments).Error
	if err != nil {
		return nil, err
	}
	if len(attachments) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &attachments[0], nil
}

func (r *KanbanRepository) DeleteAttachment(attachmentID int32) error {
	return r.db.Exec(`DELETE FROM kanban_attachments WHERE id = ?`, attachmentID).Error
}

// ==== AGGREGATES ====

func (r *KanbanRepository) GetBoardDetail(boardID, userID int32) (*contract.BoardDetail, error) {
	board, err := r.GetBoardByID(boardID, userID)
	if err != nil {
		return nil, err
	}

	columns, err := r.GetColumnsByBoard(boardID)
	if err != nil {
		return nil, err
	}

	detail := &contract.BoardDetail{
		Board:   *board,
		Columns: make([]contract.ColumnWithCards, 0, len(columns)),
	}
	for _, col := range columns {
		cards, err := r.GetCardsByColumn(col.ID)
		if err != nil {
			return nil, err
		}
		detail.Columns = append(detail.Columns, contract.ColumnWithCards{Column: col, Cards: cards})
	}
	return detail, nil
}

func (r *KanbanRepository) GetCardDetail(cardID int32) (*contract.CardDetail, error) {
	card, err := r.GetCardByID(cardID)
	if err != nil {
		return nil, err
	}

	comments, err := r.GetCommentsByCard(cardID)
	if err != nil {
		return nil, err
	}

	attachments, err := r.GetAttachmentsByCard(cardID)
	if err != nil {
		return nil, err
	}

	return &contract.CardDetail{
		Card:        *card,
		Comments:    comments,
		Attachments: attachments,
	}, nil
}

func joinTags(tags []string) string {
	return strings.ToLower(strings.Join(tags, " "))
}
