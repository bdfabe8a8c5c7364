package handler

import (
	"mime/multipart"
	"net/http"

	"payboard/internal/contract"
	"payboard/internal/domain/entity"
	"payboard/internal/domain/sqlite/repository"
	"payboard/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type KanbanService interface {
	GetBoardsPaginated(find string, page, pageSize int) (*repository.Page[entity.Board], apierror.ErrorResponse)
	CreateBoard(userID int32, req *contract.CreateBoardRequest) (*entity.Board, apierror.ErrorResponse)
	GetUserBoards(userID int32) ([]entity.Board, apierror.ErrorResponse)
	GetBoardDetail(boardID, userID int32) (*contract.BoardDetail, apierror.ErrorResponse)
	UpdateBoard(boardID, userID int32, req *contract.UpdateBoardRequest) (*entity.Board, apierror.ErrorResponse)
	DeleteBoard(boardID, userID int32) apierror.ErrorResponse
	CreateColumn(boardID, userID int32, req *contract.CreateColumnRequest) (*entity.Column, apierror.ErrorResponse)
	UpdateColumn(columnID int32, req *contract.UpdateColumnRequest) (*entity.Column, apierror.ErrorResponse)
	DeleteColumn(columnID int32) apierror.ErrorResponse
	CreateCard(columnID int32, req *contract.CreateCardRequest) (*entity.Card, apierror.ErrorResponse)
	GetCardDetail(cardID int32) (*contract.CardDetail, apierror.ErrorResponse)
	UpdateCard(cardID int32, req *contract.UpdateCardRequest) (*entity.Card, apierror.ErrorResponse)
	MoveCard(cardID int32, req *contract.MoveCardRequest) (*entity.Card, apierror.ErrorResponse)
	DeleteCard(cardID int32) apierror.ErrorResponse
	CreateComment(cardID, userID int32, req *contract.CreateCommentRequest) (*entity.Comment, apierror.ErrorResponse)
	UploadAttachment(cardID, userID int32, fileHeader *multipart.FileHeader) (*entity.Attachment, apierror.ErrorResponse)
	DeleteAttachment(attachmentID int32) apierror.ErrorResponse
}

type DefaultKanbanRoute struct {
	KanbanService KanbanService
}

func NewKanbanDefault(kanbanService KanbanService) *DefaultKanbanRoute {
	return &DefaultKanbanRoute{KanbanService: kanbanService}
}

// ==== BOARDS ====

func (k *DefaultKanbanRoute) GetBoards(c echo.Context) error {
	find, page, pageSize := pageParams(c)

	result, apierr := k.KanbanService.GetBoardsPaginated(find, page, pageSize)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, result)
}

func (k *DefaultKanbanRoute) GetMyBoards(c echo.Context) error {
	boards, apierr := k.KanbanService.GetUserBoards(actor(c).ID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"boards": boards})
}

func (k *DefaultKanbanRoute) CreateBoard(c echo.Context) error {
	var req contract.CreateBoardRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	board, apierr := k.KanbanService.CreateBoard(actor(c).ID, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, board)
}

func (k *DefaultKanbanRoute) GetBoard(c echo.Context) error {
	id, apierr := idParam32(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	detail, apierr := k.KanbanService.GetBoardDetail(id, actor(c).ID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, detail)
}

func (k *DefaultKanbanRoute) UpdateBoard(c echo.Context) error {
	id, apierr := idParam32(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req contract.UpdateBoardRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	board, apierr := k.KanbanService.UpdateBoard(id, actor(c).ID, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, board)
}

func (k *DefaultKanbanRoute) DeleteBoard(c echo.Context) error {
	id, apierr := idParam32(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if apierr := k.KanbanService.DeleteBoard(id, actor(c).ID); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}

// ==== COLUMNS ====

func (k *DefaultKanbanRoute) CreateColumn(c echo.Context) error {
	boardID, apierr := idParam32(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req contract.CreateColumnRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	column, apierr := k.KanbanService.CreateColumn(boardID, actor(c).ID, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, column)
}

func (k *DefaultKanbanRoute) UpdateColumn(c echo.Context) error {
	id, apierr := idParam32(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req contract.UpdateColumnRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	column, apierr := k.KanbanService.UpdateColumn(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, column)
}

func (k *DefaultKanbanRoute) DeleteColumn(c echo.Context) error {
	id, apierr := idParam32(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if apierr := k.KanbanService.DeleteColumn(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}

// ==== CARDS ====

func (k *DefaultKanbanRoute) CreateCard(c echo.Context) error {
	columnID, apierr := idParam32(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req contract.CreateCardRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	card, apierr := k.KanbanService.CreateCard(columnID, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, card)
}

func (k *DefaultKanbanRoute) GetCard(c echo.Context) error {
	id, apierr := idParam32(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	detail, apierr := k.KanbanService.GetCardDetail(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, detail)
}

func (k *DefaultKanbanRoute) UpdateCard(c echo.Context) error {
	id, apierr := idParam32(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req contract.UpdateCardRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	card, apierr := k.KanbanService.UpdateCard(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, card)
}

func (k *DefaultKanbanRoute) MoveCard(c echo.Context) error {
	id, apierr := idParam32(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req contract.MoveCardRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	card, apierr := k.KanbanService.MoveCard(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, card)
}

func (k *DefaultKanbanRoute) DeleteCard(c echo.Context) error {
	id, apierr := idParam32(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if apierr := k.KanbanService.DeleteCard(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}

// ==== COMMENTS & ATTACHMENTS ====

func (k *DefaultKanbanRoute) CreateComment(c echo.Context) error {
	cardID, apierr := idParam32(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req contract.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	comment, apierr := k.KanbanService.CreateComment(cardID, actor(c).ID, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, comment)
}

func (k *DefaultKanbanRoute) UploadAttachment(c echo.Context) error {
	cardID, apierr := idParam32(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewSimple(http.StatusBadRequest, "Missing 'file' form field"))
	}

	attachment, apierr := k.KanbanService.UploadAttachment(cardID, actor(c).ID, fileHeader)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, attachment)
}

func (k *DefaultKanbanRoute) DeleteAttachment(c echo.Context) error {
	id, apierr := idParam32(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if apierr := k.KanbanService.DeleteAttachment(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}
