package contract

import "payboard/internal/domain/entity"

type CreateBoardRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description *string `json:"description"`
	Color       *string `json:"color" validate:"omitempty,hexcolor"`
}

type UpdateBoardRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
	Color       *string `json:"color" validate:"omitempty,hexcolor"`
	Position    *int32  `json:"position" validate:"omitempty,min=0"`
	IsActive    *bool   `json:"is_active"`
}

type CreateColumnRequest struct {
	Title    string  `json:"title" validate:"required,max=255"`
	Color    *string `json:"color" validate:"omitempty,hexcolor"`
	MaxCards *int32  `json:"max_cards" validate:"omitempty,min=1"`
}

type UpdateColumnRequest struct {
	Title    *string `json:"title" validate:"omitempty,min=1,max=255"`
	Position *int32  `json:"position" validate:"omitempty,min=0"`
	Color    *string `json:"color" validate:"omitempty,hexcolor"`
	MaxCards *int32  `json:"max_cards" validate:"omitempty,min=1"`
	IsActive *bool   `json:"is_active"`
}

type CreateCardRequest struct {
	Title       string   `json:"title" validate:"required,max=255"`
	Description *string  `json:"description"`
	Priority    *string  `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	Tags        []string `json:"tags"`
	Color       *string  `json:"color" validate:"omitempty,hexcolor"`
	DueDate     *int64   `json:"due_date"`
}

type UpdateCardRequest struct {
	Title       *string  `json:"title" validate:"omitempty,min=1,max=255"`
	Description *string  `json:"description"`
	Priority    *string  `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	Tags        []string `json:"tags"`
	Color       *string  `json:"color" validate:"omitempty,hexcolor"`
	Position    *int32   `json:"position" validate:"omitempty,min=0"`
	ColumnID    *int32   `json:"column_id"`
	DueDate     *int64   `json:"due_date"`
	CompletedAt *int64   `json:"completed_at"`
	IsArchived  *bool    `json:"is_archived"`
}

type MoveCardRequest struct {
	ColumnID int32 `json:"column_id" validate:"required"`
	Position int32 `json:"position" validate:"min=0"`
}

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}

// BoardDetail is the full read model for a board page.
type BoardDetail struct {
	Board   entity.Board      `json:"board"`
	Columns []ColumnWithCards `json:"columns"`
}

type ColumnWithCards struct {
	Column entity.Column `json:"column"`
	Cards  []entity.Card `json:"cards"`
}

type CardDetail struct {
	Card        entity.Card         `json:"card"`
	Comments    []entity.Comment    `json:"comments"`
	Attachments []entity.Attachment `json:"attachments"`
}
