package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/microblog/microblog-system/internal/api/metrics"
	"github.com/microblog/microblog-system/internal/core/domain"
	"github.com/microblog/microblog-system/internal/core/ports"
)

// TweetHandler handles HTTP requests for tweet operations.
type TweetHandler struct {
	service ports.TweetService
}

func NewTweetHandler(service ports.TweetService) *TweetHandler {
	return &TweetHandler{service: service}
}

type createTweetRequest struct {
	Content string `json:"content" validate:"required,max=280"`
}

type updateTweetRequest struct {
	Content string `json:"content" validate:"required,max=280"`
}

type tweetResponse struct {
	ID        string               `json:"id"`
	Content   string               `json:"content"`
	AuthorID  string               `json:"authorId"`
	Author    domain.AuthorSummary `json:"author"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

type listTweetsResponse struct {
	Tweets     []tweetResponse `json:"tweets"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"totalPages"`
}

func toTweetResponse(t *ports.AuthoredTweet) tweetResponse {
	return tweetResponse{
		ID:        t.ID,
		Content:   t.Content,
		AuthorID:  t.AuthorID,
		Author:    t.Author,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// Create handles POST /tweets.
//
// @Summary      Create a tweet
// @Tags         tweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTweetRequest  true  "Tweet content (1-280 characters)"
// @Success      201   {object}  tweetResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /tweets [post]
func (h *TweetHandler) Create(c echo.Context) error {
	callerID, err := ctxCallerID(c)
	if err != nil {
		return err
	}

	var req createTweetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tweet, err := h.service.Create(c.Request().Context(), req.Content, callerID)
	if err != nil {
		return err
	}

	metrics.TweetsCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, toTweetResponse(tweet))
}

// List handles GET /tweets with 1-based page/limit query parameters.
// Invalid or missing values fall back to page=1 limit=10.
//
// @Summary      List tweets, newest first
// @Tags         tweets
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Items per page (default 10)"
// @Success      200    {object}  listTweetsResponse
// @Router       /tweets [get]
func (h *TweetHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.List(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}

	tweets := make([]tweetResponse, 0, len(result.Tweets))
	for i := range result.Tweets {
		tweets = append(tweets, toTweetResponse(&result.Tweets[i]))
	}

	return c.JSON(http.StatusOK, listTweetsResponse{
		Tweets:     tweets,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	})
}

// Get handles GET /tweets/:id.
//
// @Summary      Get a tweet by id
// @Tags         tweets
// @Produce      json
// @Param        id   path      string  true  "Tweet id"
// @Success      200  {object}  tweetResponse
// @Failure      404  {object}  map[string]string
// @Router       /tweets/{id} [get]
func (h *TweetHandler) Get(c echo.Context) error {
	tweet, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTweetResponse(tweet))
}

// Update handles PUT /tweets/:id — content replacement on the caller's
// own tweet.
//
// @Summary      Update own tweet
// @Tags         tweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Tweet id"
// @Param        body  body      updateTweetRequest  true  "New content (1-280 characters)"
// @Success      200   {object}  tweetResponse
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /tweets/{id} [put]
func (h *TweetHandler) Update(c echo.Context) error {
	callerID, err := ctxCallerID(c)
	if err != nil {
		return err
	}

	var req updateTweetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tweet, err := h.service.Update(c.Request().Context(), c.Param("id"), req.Content, callerID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toTweetResponse(tweet))
}

// Delete handles DELETE /tweets/:id.
//
// @Summary      Delete own tweet
// @Tags         tweets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Tweet id"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /tweets/{id} [delete]
func (h *TweetHandler) Delete(c echo.Context) error {
	callerID, err := ctxCallerID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), callerID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Tweet deleted successfully"})
}
