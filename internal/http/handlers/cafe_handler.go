// Café HTTP handlers.
//
// This file exposes the server-rendered pages of the directory:
//   - GET        /                    (list, filtered by query string)
//   - GET|POST   /add                 (create form / create)
//   - GET|POST   /update-price/{id}   (price form / update price)
//   - GET|POST   /delete-cafe/{id}    (confirmation / delete)
//   - GET        /health              (liveness with café count)
//
// Mutations are authorized by comparing a submitted form field with the
// configured API key. Outcomes reach the user as flash notices on the page
// the browser is redirected to (303 See Other).
package handlers

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/spencergreen21/cafeWebsite/internal/domain"
	"github.com/spencergreen21/cafeWebsite/internal/http/flash"
	"github.com/spencergreen21/cafeWebsite/internal/http/middleware"
	"github.com/spencergreen21/cafeWebsite/internal/services"
	"github.com/spencergreen21/cafeWebsite/internal/views"
)

// Form field names. The create form uses "api-key"; the price and delete
// forms use "api_key".
const (
	fieldCreateKey = "api-key"
	fieldKey       = "api_key"
	fieldNewPrice  = "new_price"
)

// CafeService defines the directory operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type CafeService interface {
	// List returns cafés matching the filter, ordered by name.
	List(ctx context.Context, f domain.CafeFilter) ([]domain.Cafe, error)
	// Count returns the number of stored cafés.
	Count(ctx context.Context) (int64, error)
	// Get returns one café or services.ErrCafeNotFound.
	Get(ctx context.Context, id uint) (*domain.Cafe, error)
	// Create validates and stores a new café.
	Create(ctx context.Context, in services.NewCafe) (*domain.Cafe, error)
	// UpdatePrice sets (or clears, when empty) a café's coffee price.
	UpdatePrice(ctx context.Context, id uint, price string) (*domain.Cafe, error)
	// Delete removes a café and returns it as it was.
	Delete(ctx context.Context, id uint) (*domain.Cafe, error)
}

// Options carries handler settings resolved from configuration.
type Options struct {
	// APIKey authorizes create, update-price and delete.
	APIKey string
}

// Handlers groups the café endpoints.
type Handlers struct {
	svc    CafeService
	apiKey []byte
}

// New constructs Handlers bound to svc.
func New(svc CafeService, opts Options) *Handlers {
	return &Handlers{svc: svc, apiKey: []byte(opts.APIKey)}
}

// keyMatches compares the submitted key with the configured one in constant
// time. An unset configured key matches nothing.
func (h *Handlers) keyMatches(submitted string) bool {
	if len(h.apiKey) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(submitted), h.apiKey) == 1
}

// rejectKey records a wrong API key and redirects to target with a notice.
func (h *Handlers) rejectKey(c *gin.Context, target string) {
	middleware.RecordAuthFailure(c.FullPath())
	middleware.LoggerFrom(c).Warn().Str("route", c.FullPath()).Msg("wrong api key")
	flash.Add(c, flash.CategoryError, MsgWrongKey)
	c.Redirect(http.StatusSeeOther, target)
}

// cafeID parses the {id} path parameter. Non-numeric and zero ids are
// reported as absent.
func cafeID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, strconv.IntSize)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// formFrom reads the create form. A checkbox counts as set when its value
// is non-empty.
func formFrom(c *gin.Context) views.CafeForm {
	set := func(k string) bool { return c.PostForm(k) != "" }
	return views.CafeForm{
		Name:        c.PostForm("name"),
		MapURL:      c.PostForm("map_url"),
		ImgURL:      c.PostForm("img_url"),
		Location:    c.PostForm("loc"),
		Seats:       c.PostForm("seats"),
		CoffeePrice: c.PostForm("coffee_price"),
		Toilet:      set("toilet"),
		Wifi:        set("wifi"),
		Sockets:     set("sockets"),
		Calls:       set("calls"),
	}
}

// missingField extracts the field name from a wrapped ErrMissingField.
func missingField(err error) string {
	return strings.TrimPrefix(err.Error(), services.ErrMissingField.Error()+": ")
}

// ListCafes godoc
// @ID          listCafes
// @Summary     List cafés
// @Description Renders every café matching all present filters, ordered by name. A flag filter is present when its value is non-empty.
// @Tags        Cafes
// @Produce     html
//
// @Param       location  query  string  false "Exact location"    example(Peckham)
// @Param       sockets   query  string  false "Has power sockets" example(1)
// @Param       toilet    query  string  false "Has a toilet"      example(1)
// @Param       wifi      query  string  false "Has wifi"          example(1)
// @Param       calls     query  string  false "Can take calls"    example(1)
//
// @Success     200  {string}  string  "HTML page"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      / [get]
func (h *Handlers) ListCafes(c *gin.Context) {
	f := domain.FilterFromQuery(c.Request.URL.Query())
	cafes, err := h.svc.List(c.Request.Context(), f)
	if err != nil {
		internal(c, err)
		return
	}
	page(c, http.StatusOK, views.PageCafes, views.ListPage{
		Notices: flash.Pop(c),
		Cafes:   cafes,
		Filter:  f,
	})
}

// AddCafeForm godoc
// @ID          addCafeForm
// @Summary     Show the create form
// @Tags        Cafes
// @Produce     html
// @Success     200  {string}  string  "HTML page"
// @Router      /add [get]
func (h *Handlers) AddCafeForm(c *gin.Context) {
	page(c, http.StatusOK, views.PageAdd, views.AddPage{Notices: flash.Pop(c)})
}

// AddCafe godoc
// @ID          addCafe
// @Summary     Create a café
// @Description Creates a café when api-key matches. Wrong keys redirect to the list with a warning; missing fields (400) and duplicate names (409) re-render the form with the submitted values.
// @Tags        Cafes
// @Accept      x-www-form-urlencoded
// @Produce     html
//
// @Param       api-key       formData  string  true  "API key"
// @Param       name          formData  string  true  "Name"
// @Param       map_url       formData  string  true  "Map URL"
// @Param       img_url       formData  string  true  "Image URL"
// @Param       loc           formData  string  true  "Location"
// @Param       seats         formData  string  true  "Seats"   example(20-30)
// @Param       coffee_price  formData  string  false "Price"   example(£2.80)
// @Param       toilet        formData  string  false "Has a toilet"
// @Param       wifi          formData  string  false "Has wifi"
// @Param       sockets       formData  string  false "Has power sockets"
// @Param       calls         formData  string  false "Can take calls"
//
// @Success     303  {string}  string  "Redirect to /"
// @Failure     400  {string}  string  "Form re-rendered: missing field"
// @Failure     409  {string}  string  "Form re-rendered: duplicate name"
// @Failure     429  {object}  handlers.ErrorResponse  "Rate limited"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /add [post]
func (h *Handlers) AddCafe(c *gin.Context) {
	if !h.keyMatches(c.PostForm(fieldCreateKey)) {
		h.rejectKey(c, "/")
		return
	}

	form := formFrom(c)
	cafe, err := h.svc.Create(c.Request.Context(), services.NewCafe{
		Name:         form.Name,
		MapURL:       form.MapURL,
		ImgURL:       form.ImgURL,
		Location:     form.Location,
		Seats:        form.Seats,
		HasToilet:    form.Toilet,
		HasWifi:      form.Wifi,
		HasSockets:   form.Sockets,
		CanTakeCalls: form.Calls,
		CoffeePrice:  form.CoffeePrice,
	})
	switch {
	case errors.Is(err, services.ErrMissingField):
		h.rerenderAdd(c, http.StatusBadRequest, form, fmt.Sprintf(MsgMissingField, missingField(err)))
		return
	case errors.Is(err, services.ErrDuplicateCafe):
		h.rerenderAdd(c, http.StatusConflict, form, MsgDuplicate)
		return
	case err != nil:
		internal(c, err)
		return
	}

	middleware.LoggerFrom(c).Info().Uint("cafe_id", cafe.ID).Msg("cafe created")
	flash.Add(c, flash.CategorySuccess, MsgCafeAdded)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handlers) rerenderAdd(c *gin.Context, status int, form views.CafeForm, msg string) {
	page(c, status, views.PageAdd, views.AddPage{
		Notices: []flash.Notice{{Category: flash.CategoryError, Message: msg}},
		Form:    form,
	})
}

// UpdatePriceForm godoc
// @ID          updatePriceForm
// @Summary     Show the price form
// @Tags        Cafes
// @Produce     html
// @Param       id   path  int  true  "Café id"  minimum(1)
// @Success     200  {string}  string  "HTML page"
// @Failure     404  {object}  handlers.ErrorResponse  "Non-numeric id"
// @Router      /update-price/{id} [get]
func (h *Handlers) UpdatePriceForm(c *gin.Context) {
	id, found := cafeID(c)
	if !found {
		notFound(c)
		return
	}
	page(c, http.StatusOK, views.PageChange, views.CafePage{Notices: flash.Pop(c), CafeID: uint64(id)})
}

// UpdatePrice godoc
// @ID          updatePrice
// @Summary     Change a café's coffee price
// @Description Sets coffee_price from new_price (empty clears it) when api_key matches. Wrong keys redirect to the list with a warning.
// @Tags        Cafes
// @Accept      x-www-form-urlencoded
// @Produce     html,json
//
// @Param       id         path      int     true   "Café id"  minimum(1)
// @Param       api_key    formData  string  true   "API key"
// @Param       new_price  formData  string  false  "New price"  example(£3.00)
//
// @Success     303  {string}  string  "Redirect to /"
// @Failure     404  {object}  handlers.ErrorResponse  "Café not found"
// @Failure     429  {object}  handlers.ErrorResponse  "Rate limited"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /update-price/{id} [post]
func (h *Handlers) UpdatePrice(c *gin.Context) {
	id, found := cafeID(c)
	if !found {
		notFound(c)
		return
	}
	if !h.keyMatches(c.PostForm(fieldKey)) {
		h.rejectKey(c, "/")
		return
	}

	cafe, err := h.svc.UpdatePrice(c.Request.Context(), id, c.PostForm(fieldNewPrice))
	if errors.Is(err, services.ErrCafeNotFound) {
		notFound(c)
		return
	}
	if err != nil {
		internal(c, err)
		return
	}

	middleware.LoggerFrom(c).Info().Uint("cafe_id", cafe.ID).Str("price", cafe.Price()).Msg("coffee price changed")
	flash.Add(c, flash.CategorySuccess, fmt.Sprintf(MsgPriceChanged, cafe.Name))
	c.Redirect(http.StatusSeeOther, "/")
}

// DeleteCafeForm godoc
// @ID          deleteCafeForm
// @Summary     Show the delete confirmation
// @Tags        Cafes
// @Produce     html
// @Param       id   path  int  true  "Café id"  minimum(1)
// @Success     200  {string}  string  "HTML page"
// @Failure     404  {object}  handlers.ErrorResponse  "Non-numeric id"
// @Router      /delete-cafe/{id} [get]
func (h *Handlers) DeleteCafeForm(c *gin.Context) {
	id, found := cafeID(c)
	if !found {
		notFound(c)
		return
	}
	page(c, http.StatusOK, views.PageDelete, views.CafePage{Notices: flash.Pop(c), CafeID: uint64(id)})
}

// DeleteCafe godoc
// @ID          deleteCafe
// @Summary     Delete a café
// @Description Removes the café when api_key matches. Wrong keys redirect back to the confirmation page with a warning.
// @Tags        Cafes
// @Accept      x-www-form-urlencoded
// @Produce     html,json
//
// @Param       id       path      int     true  "Café id"  minimum(1)
// @Param       api_key  formData  string  true  "API key"
//
// @Success     303  {string}  string  "Redirect to /"
// @Failure     404  {object}  handlers.ErrorResponse  "Café not found"
// @Failure     429  {object}  handlers.ErrorResponse  "Rate limited"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /delete-cafe/{id} [post]
func (h *Handlers) DeleteCafe(c *gin.Context) {
	id, found := cafeID(c)
	if !found {
		notFound(c)
		return
	}
	if !h.keyMatches(c.PostForm(fieldKey)) {
		h.rejectKey(c, fmt.Sprintf("/delete-cafe/%d", id))
		return
	}

	cafe, err := h.svc.Delete(c.Request.Context(), id)
	if errors.Is(err, services.ErrCafeNotFound) {
		notFound(c)
		return
	}
	if err != nil {
		internal(c, err)
		return
	}

	middleware.LoggerFrom(c).Info().Uint("cafe_id", cafe.ID).Msg("cafe deleted")
	flash.Add(c, flash.CategorySuccess, fmt.Sprintf(MsgCafeDeleted, cafe.Name))
	c.Redirect(http.StatusSeeOther, "/")
}
