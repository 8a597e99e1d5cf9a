package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrijs2005/goboard/internal/common"
	"github.com/dmitrijs2005/goboard/internal/server/models"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type createUserRequest struct {
	Username             string `json:"username" binding:"required,min=3,max=50"`
	Email                string `json:"email" binding:"required,email"`
	Password             string `json:"password" binding:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" binding:"required,eqfield=Password"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type createQuestionRequest struct {
	Subject string `json:"subject" binding:"required,max=200"`
	Content string `json:"content" binding:"required"`
}

type createAnswerRequest struct {
	QuestionID int64  `json:"question_id" binding:"required"`
	Content    string `json:"content" binding:"required"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type loginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        userResponse `json:"user"`
}

type questionResponse struct {
	ID         int64     `json:"id"`
	Subject    string    `json:"subject"`
	Content    string    `json:"content"`
	AuthorID   int64     `json:"author_id"`
	CreateDate time.Time `json:"create_date"`
}

type answerResponse struct {
	ID         int64     `json:"id"`
	QuestionID int64     `json:"question_id"`
	Content    string    `json:"content"`
	AuthorID   int64     `json:"author_id"`
	CreateDate time.Time `json:"create_date"`
}

type questionDetailResponse struct {
	questionResponse
	Answers []answerResponse `json:"answers"`
}

type questionListResponse struct {
	Total int64              `json:"total"`
	Items []questionResponse `json:"items"`
}

type fieldError struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

func toQuestionResponse(q *models.Question) questionResponse {
	return questionResponse{
		ID:         q.ID,
		Subject:    q.Subject,
		Content:    q.Content,
		AuthorID:   q.AuthorID,
		CreateDate: q.CreateDate,
	}
}

func toAnswerResponse(a *models.Answer) answerResponse {
	return answerResponse{
		ID:         a.ID,
		QuestionID: a.QuestionID,
		Content:    a.Content,
		AuthorID:   a.AuthorID,
		CreateDate: a.CreateDate,
	}
}

func abortUnauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "not authenticated"})
}

// abortBindError renders binding failures as a 400 with one entry per
// invalid field, or a generic detail for malformed JSON.
func abortBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]fieldError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, fieldError{Field: fe.Field(), Msg: "failed on " + fe.Tag()})
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": details})
		return
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
}

func (s *HTTPServer) createUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBindError(c, err)
		return
	}

	ctx := c.Request.Context()

	if _, err := s.users.Register(ctx, req.Username, req.Email, req.Password); err != nil {
		if errors.Is(err, common.ErrorConflict) {
			c.JSON(http.StatusConflict, gin.H{"detail": "username or email already registered"})
			return
		}
		s.logger.Error(ctx, err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
		return
	}

	s.logger.Info(ctx, "Registered", "username", req.Username)
	c.Status(http.StatusNoContent)
}

func (s *HTTPServer) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBindError(c, err)
		return
	}

	ctx := c.Request.Context()

	result, err := s.users.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			c.Header("WWW-Authenticate", "Bearer")
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "incorrect username or password"})
			return
		}
		s.logger.Error(ctx, err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		AccessToken: result.AccessToken,
		TokenType:   "bearer",
		User: userResponse{
			ID:       result.User.ID,
			Username: result.User.Username,
			Email:    result.User.Email,
		},
	})
}

func (s *HTTPServer) listQuestions(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	ctx := c.Request.Context()

	total, questions, err := s.questions.List(ctx, page, size)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
		return
	}

	items := make([]questionResponse, 0, len(questions))
	for _, q := range questions {
		items = append(items, toQuestionResponse(q))
	}

	c.JSON(http.StatusOK, questionListResponse{Total: total, Items: items})
}

func (s *HTTPServer) questionDetail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid question id"})
		return
	}

	ctx := c.Request.Context()

	question, answers, err := s.questions.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "question not found"})
			return
		}
		s.logger.Error(ctx, err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
		return
	}

	resp := questionDetailResponse{
		questionResponse: toQuestionResponse(question),
		Answers:          make([]answerResponse, 0, len(answers)),
	}
	for _, a := range answers {
		resp.Answers = append(resp.Answers, toAnswerResponse(a))
	}

	c.JSON(http.StatusOK, resp)
}

func (s *HTTPServer) createQuestion(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		abortUnauthorized(c)
		return
	}

	var req createQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBindError(c, err)
		return
	}

	ctx := c.Request.Context()

	question, err := s.questions.Create(ctx, user.ID, req.Subject, req.Content)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
		return
	}

	c.JSON(http.StatusCreated, toQuestionResponse(question))
}

func (s *HTTPServer) createAnswer(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		abortUnauthorized(c)
		return
	}

	var req createAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBindError(c, err)
		return
	}

	ctx := c.Request.Context()

	answer, err := s.answers.Create(ctx, user.ID, req.QuestionID, req.Content)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "question not found"})
			return
		}
		s.logger.Error(ctx, err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
		return
	}

	c.JSON(http.StatusCreated, toAnswerResponse(answer))
}

func (s *HTTPServer) health(c *gin.Context) {
	if s.db != nil {
		if err := s.db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
