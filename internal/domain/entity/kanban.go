package entity

// Kanban hierarchy: a board owns ordered columns, a column owns ordered
// cards, a card owns comments and attachments. Boards, columns and cards
// are soft-deleted via their active/archived flag, never removed.

type Board struct {
	ID          int32   `gorm:"primaryKey" json:"id"`
	UserID      int32   `gorm:"not null" json:"user_id"`
	Title       string  `gorm:"not null" json:"title"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	IsActive    bool    `gorm:"not null;default:true" json:"is_active"`
	Position    int32   `gorm:"not null;default:0" json:"position"`
	CreatedAt   int64   `gorm:"not null" json:"created_at"`
	UpdatedAt   int64   `gorm:"not null;autoUpdateTime:false" json:"updated_at"`
}

func (Board) TableName() string {
	return "kanban_boards"
}

type Column struct {
	ID        int32   `gorm:"primaryKey" json:"id"`
	BoardID   int32   `gorm:"not null" json:"board_id"`
	Title     string  `gorm:"not null" json:"title"`
	Position  int32   `gorm:"not null" json:"position"`
	Color     *string `json:"color"`
	MaxCards  *int32  `json:"max_cards"`
	IsActive  bool    `gorm:"not null;default:true" json:"is_active"`
	CreatedAt int64   `gorm:"not null" json:"created_at"`
	UpdatedAt int64   `gorm:"not null;autoUpdateTime:false" json:"updated_at"`
}

func (Column) TableName() string {
	return "kanban_columns"
}

type Card struct {
	ID          int32   `gorm:"primaryKey" json:"id"`
	ColumnID    int32   `gorm:"not null" json:"column_id"`
	Title       string  `gorm:"not null" json:"title"`
	Description *string `json:"description"`
	Priority    string  `gorm:"not null;default:medium" json:"priority"`
	Tags        string  `gorm:"not null;default:''" json:"tags"`
	Color       *string `json:"color"`
	Position    int32   `gorm:"not null" json:"position"`
	DueDate     *int64  `json:"due_date"`
	CompletedAt *int64  `json:"completed_at"`
	IsArchived  bool    `gorm:"not null;default:false" json:"is_archived"`
	CreatedAt   int64   `gorm:"not null" json:"created_at"`
	UpdatedAt   int64   `gorm:"not null;autoUpdateTime:false" json:"updated_at"`
}

func (Card) TableName() string {
	return "kanban_cards"
}

type Comment struct {
	ID        int32  `gorm:"primaryKey" json:"id"`
	CardID    int32  `gorm:"not null" json:"card_id"`
	UserID    int32  `gorm:"not null" json:"user_id"`
	Content   string `gorm:"not null" json:"content"`
	CreatedAt int64  `gorm:"not null" json:"created_at"`
	UpdatedAt int64  `gorm:"not null;autoUpdateTime:false" json:"updated_at"`
}

func (Comment) TableName() string {
	return "kanban_comments"
}

type Attachment struct {
	ID               int32  `gorm:"primaryKey" json:"id"`
	CardID           int32  `gorm:"not null" json:"card_id"`
	Filename         string `gorm:"not null" json:"filename"`
	OriginalFilename string `gorm:"not null" json:"original_filename"`
	FileSize         int64  `gorm:"not null" json:"file_size"`
	MimeType         string `gorm:"not null" json:"mime_type"`
	UploadedBy       int32  `gorm:"not null" json:"uploaded_by"`
	CreatedAt        int64  `gorm:"not null" json:"created_at"`
}

func (Attachment) TableName() string {
	return "kanban_attachments"
}
