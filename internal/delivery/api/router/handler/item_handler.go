package handler

import (
	"log/slog"
	"net/http"
	"time"

	"lostfound/internal/delivery/api/response"
	"lostfound/internal/delivery/api/validator"
	domainerrors "lostfound/internal/domain/errors"
	"lostfound/internal/domain/entity"
	"lostfound/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ItemHandlerParams holds dependencies for ItemHandler, injected by Fx.
type ItemHandlerParams struct {
	fx.In

	ItemUC usecase.ItemUsecase
	Logger *slog.Logger
}

// ItemHandler serves lost and found reports
type ItemHandler struct {
	itemUC usecase.ItemUsecase
	logger *slog.Logger
}

// NewItemHandler is the constructor for ItemHandler
func NewItemHandler(params ItemHandlerParams) *ItemHandler {
	return &ItemHandler{
		itemUC: params.ItemUC,
		logger: params.Logger,
	}
}

// LocationRequest is where the item was lost or found
type LocationRequest struct {
	Building  string  `json:"building" validate:"required"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// SubmitItemRequest is the body of POST /items/lost and /items/found
type SubmitItemRequest struct {
	UserID        string          `json:"userId"`
	Title         string          `json:"title" validate:"required"`
	Description   string          `json:"description" validate:"required"`
	Category      string          `json:"category" validate:"required,category"`
	Location      LocationRequest `json:"location"`
	PhotoURL      string          `json:"photoUrl"`
	ReporterEmail string          `json:"reporterEmail" validate:"required,contains=@"`
	ReporterName  string          `json:"reporterName"`
	PushToken     string          `json:"pushToken"`
}

// ItemResponse is the public projection of a report
type ItemResponse struct {
	ItemID      uuid.UUID         `json:"itemId"`
	ItemType    entity.ItemType   `json:"itemType"`
	Title       string            `json:"title"`
	Category    entity.Category   `json:"category"`
	Description string            `json:"description"`
	Location    entity.Location   `json:"location"`
	PhotoURL    string            `json:"photoUrl"`
	Status      entity.ItemStatus `json:"status"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// SubmitItemResponse always carries matches, possibly empty
type SubmitItemResponse struct {
	ItemID  uuid.UUID               `json:"itemId"`
	Status  entity.ItemStatus       `json:"status"`
	Matches []entity.MatchCandidate `json:"matches"`
}

// ListItemsResponse is the body of GET /items/{type}/all
type ListItemsResponse struct {
	Items []ItemResponse `json:"items"`
}

// ListMatchesResponse is the body of GET /items/:id/matches
type ListMatchesResponse struct {
	Matches []*entity.MatchRecord `json:"matches"`
}

func newItemResponse(item *entity.ItemReport) ItemResponse {
	return ItemResponse{
		ItemID:      item.ID,
		ItemType:    item.Type,
		Title:       item.Title,
		Category:    item.Category,
		Description: item.Description,
		Location:    item.Location,
		PhotoURL:    item.PhotoURL,
		Status:      item.Status,
		CreatedAt:   item.CreatedAt,
	}
}

// SubmitLost handles POST /items/lost
func (h *ItemHandler) SubmitLost(c echo.Context) error {
	return h.submit(c, entity.ItemTypeLost)
}

// SubmitFound handles POST /items/found
func (h *ItemHandler) SubmitFound(c echo.Context) error {
	return h.submit(c, entity.ItemTypeFound)
}

func (h *ItemHandler) submit(c echo.Context, itemType entity.ItemType) error {
	var req SubmitItemRequest
	if err := c.Bind(&req); err != nil {
		return response.AppError(c, domainerrors.ErrValidationFailed.WithDetails("request body must be a JSON object"))
	}

	if err := c.Validate(&req); err != nil {
		var verr *validator.ValidationError
		if errors.As(err, &verr) {
			return response.AppError(c, domainerrors.ErrValidationFailed.WithDetails(verr.Reason))
		}

		return response.AppError(c, domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	input := &usecase.SubmitItemInput{
		UserID:      req.UserID,
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		Location: entity.Location{
			Building:  req.Location.Building,
			Latitude:  req.Location.Latitude,
			Longitude: req.Location.Longitude,
		},
		PhotoURL:      req.PhotoURL,
		ReporterEmail: req.ReporterEmail,
		ReporterName:  req.ReporterName,
		PushToken:     req.PushToken,
	}

	ctx := c.Request().Context()

	var (
		out *usecase.SubmitOutput
		err error
	)
	if itemType == entity.ItemTypeLost {
		out, err = h.itemUC.SubmitLost(ctx, input)
	} else {
		out, err = h.itemUC.SubmitFound(ctx, input)
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	matches := out.Matches
	if matches == nil {
		matches = []entity.MatchCandidate{}
	}

	return response.Success(c, http.StatusCreated, SubmitItemResponse{
		ItemID:  out.Item.ID,
		Status:  out.Item.Status,
		Matches: matches,
	})
}

// ListAll returns a handler for GET /items/{type}/all
func (h *ItemHandler) ListAll(itemType entity.ItemType) echo.HandlerFunc {
	return func(c echo.Context) error {
		items, err := h.itemUC.ListAll(c.Request().Context(), itemType)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		resp := ListItemsResponse{Items: make([]ItemResponse, 0, len(items))}
		for _, item := range items {
			resp.Items = append(resp.Items, newItemResponse(item))
		}

		return response.Success(c, http.StatusOK, resp)
	}
}

// GeoJSON returns a handler for GET /items/{type}/geojson listing open reports as map points
func (h *ItemHandler) GeoJSON(itemType entity.ItemType) echo.HandlerFunc {
	return func(c echo.Context) error {
		items, err := h.itemUC.ListOpen(c.Request().Context(), itemType)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		fc := geojson.NewFeatureCollection()
		for _, item := range items {
			f := geojson.NewFeature(orb.Point{item.Location.Longitude, item.Location.Latitude})
			f.ID = item.ID.String()
			f.Properties["itemId"] = item.ID.String()
			f.Properties["itemType"] = string(item.Type)
			f.Properties["title"] = item.Title
			f.Properties["category"] = string(item.Category)
			f.Properties["building"] = item.Location.Building
			f.Properties["photoUrl"] = item.PhotoURL
			f.Properties["createdAt"] = item.CreatedAt.Format(time.RFC3339)
			fc.Append(f)
		}

		return c.JSON(http.StatusOK, fc)
	}
}

// GetItem handles GET /items/:id
func (h *ItemHandler) GetItem(c echo.Context) error {
	id, err := parseItemID(c)
	if err != nil {
		return response.AppError(c, domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	item, err := h.itemUC.GetItem(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newItemResponse(item))
}

// ItemMatches handles GET /items/:id/matches
func (h *ItemHandler) ItemMatches(c echo.Context) error {
	id, err := parseItemID(c)
	if err != nil {
		return response.AppError(c, domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	matches, err := h.itemUC.ItemMatches(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if matches == nil {
		matches = []*entity.MatchRecord{}
	}

	return response.Success(c, http.StatusOK, ListMatchesResponse{Matches: matches})
}

// ClaimItem handles POST /items/:id/claim
func (h *ItemHandler) ClaimItem(c echo.Context) error {
	id, err := parseItemID(c)
	if err != nil {
		return response.AppError(c, domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	item, err := h.itemUC.ClaimItem(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newItemResponse(item))
}

// CloseItem handles POST /items/:id/close
func (h *ItemHandler) CloseItem(c echo.Context) error {
	id, err := parseItemID(c)
	if err != nil {
		return response.AppError(c, domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	item, err := h.itemUC.CloseItem(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newItemResponse(item))
}

func parseItemID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errors.New("itemId must be a UUID")
	}

	return id, nil
}
