package service

import (
	"io"
	"mime/multipart"
	"path/filepath"

	"payboard/internal/contract"
	"payboard/internal/domain/entity"
	"payboard/internal/domain/sqlite/repository"
	"payboard/internal/infrastructure/aws/storage"
	"payboard/internal/utils"
	"payboard/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

const maxAttachmentSize = 10 << 20 // 10 MiB

type KanbanRepository interface {
	GetBoardsPaginated(find string, page, pageSize int) (*repository.Page[entity.Board], error)
	CreateBoard(userID int32, req *contract.CreateBoardRequest) (*entity.Board, error)
	GetBoardsByUser(userID int32) ([]entity.Board, error)
	GetBoardByID(boardID, userID int32) (*entity.Board, error)
	UpdateBoard(boardID, userID int32, req *contract.UpdateBoardRequest) (*entity.Board, error)
	SoftDeleteBoard(boardID, userID int32) error
	CreateColumn(boardID int32, req *contract.CreateColumnRequest) (*entity.Column, error)
	GetColumnsByBoard(boardID int32) ([]entity.Column, error)
	UpdateColumn(columnID int32, req *contract.UpdateColumnRequest) (*entity.Column, error)
	SoftDeleteColumn(columnID int32) error
	CreateCard(columnID int32, req *contract.CreateCardRequest) (*entity.Card, error)
	GetCardsByColumn(columnID int32) ([]entity.Card, error)
	GetCardByID(cardID int32) (*entity.Card, error)
	UpdateCard(cardID int32, req *contract.UpdateCardRequest) (*entity.Card, error)
	MoveCard(cardID int32, req *contract.MoveCardRequest) (*entity.Card, error)
	ArchiveCard(cardID int32) error
	CreateComment(cardID, userID int32, req *contract.CreateCommentRequest) (*entity.Comment, error)
	GetCommentsByCard(cardID int32) ([]entity.Comment, error)
	CreateAttachment(a *entity.Attachment) (*entity.Attachment, error)
	GetAttachmentByID(attachmentID int32) (*entity.Attachment, error)
	DeleteAttachment(attachmentID int32) error
	GetBoardDetail(boardID, userID int32) (*contract.BoardDetail, error)
	GetCardDetail(cardID int32) (*contract.CardDetail, error)
}

// defaultColumns are seeded onto every new board.
var defaultColumns = []contract.CreateColumnRequest{
	{Title: "To Do", Color: strptr("#EF4444")},
	{Title: "In Progress", Color: strptr("#F59E0B")},
	{Title: "Review", Color: strptr("#8B5CF6")},
	{Title: "Done", Color: strptr("#10B981")},
}

type KanbanService struct {
	Repo     KanbanRepository
	S3       storage.S3Client
	Validate *validator.Validate
}

func NewKanbanService(repo KanbanRepository, s3 storage.S3Client, validate *validator.Validate) *KanbanService {
	return &KanbanService{Repo: repo, S3: s3, Validate: validate}
}

// ==== BOARDS ====

func (s *KanbanService) GetBoardsPaginated(find string, page, pageSize int) (*repository.Page[entity.Board], apierror.ErrorResponse) {
	result, err := s.Repo.GetBoardsPaginated(find, page, pageSize)
	if err != nil {
		return nil, mapStoreError("failed to list boards", err)
	}
	return result, nil
}

// CreateBoard inserts the board and seeds its default columns. The two
// steps are not atomic; a seeding failure leaves the board with whatever
// columns were created before it.
func (s *KanbanService) CreateBoard(userID int32, req *contract.CreateBoardRequest) (*entity.Board, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	board, err := s.Repo.CreateBoard(userID, req)
	if err != nil {
		return nil, mapStoreError("failed to create board", err)
	}

	for _, col := range defaultColumns {
		if _, err := s.Repo.CreateColumn(board.ID, &col); err != nil {
			log.Errorf("failed to seed column %q on board %d: %v", col.Title, board.ID, err)
		}
	}
	return board, nil
}

func (s *KanbanService) GetUserBoards(userID int32) ([]entity.Board, apierror.ErrorResponse) {
	boards, err := s.Repo.GetBoardsByUser(userID)
	if err != nil {
		return nil, mapStoreError("failed to list user boards", err)
	}
	return boards, nil
}

func (s *KanbanService) GetBoardDetail(boardID, userID int32) (*contract.BoardDetail, apierror.ErrorResponse) {
	detail, err := s.Repo.GetBoardDetail(boardID, userID)
	if err != nil {
		return nil, mapStoreError("failed to fetch board", err)
	}
	return detail, nil
}

func (s *KanbanService) UpdateBoard(boardID, userID int32, req *contract.UpdateBoardRequest) (*entity.Board, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	board, err := s.Repo.UpdateBoard(boardID, userID, req)
	if err != nil {
		return nil, mapStoreError("failed to update board", err)
	}
	return board, nil
}

func (s *KanbanService) DeleteBoard(boardID, userID int32) apierror.ErrorResponse {
	if err := s.Repo.SoftDeleteBoard(boardID, userID); err != nil {
		return mapStoreError("failed to delete board", err)
	}
	return nil
}

// ==== COLUMNS ====

func (s *KanbanService) CreateColumn(boardID, userID int32, req *contract.CreateColumnRequest) (*entity.Column, apierror.ErrorResponse) {
	// The board must exist and belong to the caller.
	if _, err := s.Repo.GetBoardByID(boardID, userID); err != nil {
		return nil, mapStoreError("failed to fetch board for column create", err)
	}

	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	column, err := s.Repo.CreateColumn(boardID, req)
	if err != nil {
		return nil, mapStoreError("failed to create column", err)
	}
	return column, nil
}

func (s *KanbanService) UpdateColumn(columnID int32, req *contract.UpdateColumnRequest) (*entity.Column, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	column, err := s.Repo.UpdateColumn(columnID, req)
	if err != nil {
		return nil, mapStoreError("failed to update column", err)
	}
	return column, nil
}

func (s *KanbanService) DeleteColumn(columnID int32) apierror.ErrorResponse {
	if err := s.Repo.SoftDeleteColumn(columnID); err != nil {
		return mapStoreError("failed to delete column", err)
	}
	return nil
}

// ==== CARDS ====

func (s *KanbanService) CreateCard(columnID int32, req *contract.CreateCardRequest) (*entity.Card, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	card, err := s.Repo.CreateCard(columnID, req)
	if err != nil {
		return nil, mapStoreError("failed to create card", err)
	}
	return card, nil
}

func (s *KanbanService) GetCardDetail(cardID int32) (*contract.CardDetail, apierror.ErrorResponse) {
	detail, err := s.Repo.GetCardDetail(cardID)
	if err != nil {
		return nil, mapStoreError("failed to fetch card", err)
	}
	return detail, nil
}

func (s *KanbanService) UpdateCard(cardID int32, req *contract.UpdateCardRequest) (*entity.Card, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	card, err := s.Repo.UpdateCard(cardID, req)
	if err != nil {
		return nil, mapStoreError("failed to update card", err)
	}
	return card, nil
}

func (s *KanbanService) MoveCard(cardID int32, req *contract.MoveCardRequest) (*entity.Card, apierror.ErrorResponse) {
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	card, err := s.Repo.MoveCard(cardID, req)
	if err != nil {
		return nil, mapStoreError("failed to move card", err)
	}
	return card, nil
}

func (s *KanbanService) DeleteCard(cardID int32) apierror.ErrorResponse {
	if err := s.Repo.ArchiveCard(cardID); err != nil {
		return mapStoreError("failed to archive card", err)
	}
	return nil
}

// ==== COMMENTS ====

func (s *KanbanService) CreateComment(cardID, userID int32, req *contract.CreateCommentRequest) (*entity.Comment, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	comment, err := s.Repo.CreateComment(cardID, userID, req)
	if err != nil {
		return nil, mapStoreError("failed to create comment", err)
	}
	return comment, nil
}

// ==== ATTACHMENTS ====

// UploadAttachment stores the file on S3 under a fresh UUID name and
// records the row. A row failure after the upload leaves an orphan
// object; the delete path cleans objects before rows for the same reason.
func (s *KanbanService) UploadAttachment(cardID, userID int32, fileHeader *multipart.FileHeader) (*entity.Attachment, apierror.ErrorResponse) {
	if fileHeader.Size > maxAttachmentSize {
		return nil, apierror.NewSimple(413, "Attachment exceeds the %d byte limit", maxAttachmentSize)
	}

	if _, err := s.Repo.GetCardByID(cardID); err != nil {
		return nil, mapStoreError("failed to fetch card for attachment", err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Errorf("failed to open attachment upload: %v", err)
		return nil, apierror.InternalServerError
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Errorf("failed to read attachment upload: %v", err)
		return nil, apierror.InternalServerError
	}

	name := uuid.NewString() + filepath.Ext(fileHeader.Filename)
	_, mimeType, err := s.S3.UploadFile(data, name)
	if err != nil {
		log.Errorf("failed to upload attachment: %v", err)
		return nil, apierror.InternalServerError
	}

	attachment, err := s.Repo.CreateAttachment(&entity.Attachment{
		CardID:           cardID,
		Filename:         name,
		OriginalFilename: fileHeader.Filename,
		FileSize:         int64(len(data)),
		MimeType:         mimeType,
		UploadedBy:       userID,
	})
	if err != nil {
		return nil, mapStoreError("failed to record attachment", err)
	}
	return attachment, nil
}

func (s *KanbanService) DeleteAttachment(attachmentID int32) apierror.ErrorResponse {
	attachment, err := s.Repo.GetAttachmentByID(attachmentID)
	if err != nil {
		return mapStoreError("failed to fetch attachment", err)
	}

	if err := s.S3.DeleteFile(attachment.Filename); err != nil {
		log.Errorf("failed to delete attachment object %s: %v", attachment.Filename, err)
		return apierror.InternalServerError
	}

	if err := s.Repo.DeleteAttachment(attachmentID); err != nil {
		return mapStoreError("failed to delete attachment row", err)
	}
	return nil
}

func strptr(s string) *string {
	return &s
}
