//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/performlikemj/neighborhood-united-sub004/internal/handler/api"
	resdto "github.com/performlikemj/neighborhood-united-sub004/internal/handler/dto/response"
	"github.com/performlikemj/neighborhood-united-sub004/internal/handler/middleware"
	"github.com/performlikemj/neighborhood-united-sub004/internal/infra/jobs"
	"github.com/performlikemj/neighborhood-united-sub004/internal/pkg/errs"
	"github.com/performlikemj/neighborhood-united-sub004/tests/common/httptest"
	commandsmock "github.com/performlikemj/neighborhood-united-sub004/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ChefHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockCtrl  *gomock.Controller
	mockBreak *commandsmock.MockBreakCommands
	handler   *api.ChefHandler
	chefID    uuid.UUID
}

func (s *ChefHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.chefID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockBreak = commandsmock.NewMockBreakCommands(s.mockCtrl)
	s.handler = api.NewChefHandler(s.mockBreak)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.chefID)
		c.Set("user_role", middleware.RoleChef)
		c.Next()
	}

	s.router.POST("/chefs/me/break", authMiddleware, s.handler.StartBreak)
	s.router.DELETE("/chefs/me/break", authMiddleware, s.handler.EndBreak)
	s.router.GET("/chefs/break-jobs/:id", authMiddleware, s.handler.BreakJob)
}

func (s *ChefHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestChefHandlerSuite(t *testing.T) {
	suite.Run(t, new(ChefHandlerTestSuite))
}

func (s *ChefHandlerTestSuite) TestStartBreak() {
	url := "/chefs/me/break"
	reqBody := map[string]any{"reason": "family emergency"}

	s.Run("success: returns 202 Accepted with the cascade job id", func() {
		jobID := uuid.New()
		s.mockBreak.EXPECT().StartBreak(gomock.Any(), s.chefID, "family emergency").
			Return(jobID, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.StartBreakResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusAccepted, &body)
		s.Equal(jobID, body.JobID)
	})

	s.Run("error: 400 Bad Request without a reason", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 Not Found for an unknown chef", func() {
		s.mockBreak.EXPECT().StartBreak(gomock.Any(), s.chefID, "family emergency").
			Return(uuid.Nil, errs.ErrChefNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Chef not found")
	})

	s.Run("error: 401 Unauthorized without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *ChefHandlerTestSuite) TestEndBreak() {
	url := "/chefs/me/break"

	s.Run("success: returns 204 No Content", func() {
		s.mockBreak.EXPECT().EndBreak(gomock.Any(), s.chefID).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found for an unknown chef", func() {
		s.mockBreak.EXPECT().EndBreak(gomock.Any(), s.chefID).
			Return(errs.ErrChefNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Chef not found")
	})
}

func (s *ChefHandlerTestSuite) TestBreakJob() {
	jobID := uuid.New()
	url := "/chefs/break-jobs/" + jobID.String()

	s.Run("success: a finished job reports the cascade result", func() {
		started := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
		finished := started.Add(2 * time.Second)
		rec := &jobs.JobRecord{
			ID:         jobID,
			ChefID:     s.chefID,
			Status:     jobs.JobCompleted,
			StartedAt:  started,
			FinishedAt: &finished,
			Result: &jobs.CascadeResult{
				CancelledCount:   3,
				RefundsProcessed: 2,
				RefundsFailed:    1,
				PerOrderErrors: []jobs.PerOrderError{
					{OrderID: uuid.New(), Stage: "refund", Message: "processor rejected"},
				},
			},
		}
		s.mockBreak.EXPECT().JobResult(gomock.Any(), jobID).Return(rec, nil).Times(1)
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.BreakJobResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.Equal(jobID, body.JobID)
		s.Equal("completed", body.Status)
		s.Require().NotNil(body.Result)
		s.Equal(3, body.Result.CancelledCount)
		s.Equal(2, body.Result.RefundsProcessed)
		s.Equal(1, body.Result.RefundsFailed)
		s.Len(body.Result.PerOrderErrors, 1)
	})

	s.Run("success: a running job has no result yet", func() {
		rec := &jobs.JobRecord{
			ID:        jobID,
			ChefID:    s.chefID,
			Status:    jobs.JobRunning,
			StartedAt: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
		}
		s.mockBreak.EXPECT().JobResult(gomock.Any(), jobID).Return(rec, nil).Times(1)
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.BreakJobResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.Equal("running", body.Status)
		s.Nil(body.Result)
		s.Nil(body.FinishedAt)
	})

	s.Run("error: 404 Not Found for an expired or unknown job", func() {
		s.mockBreak.EXPECT().JobResult(gomock.Any(), jobID).
			Return(nil, errs.ErrBreakJobNotFound).Times(1)
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Break job not found")
	})

	s.Run("error: 400 Bad Request for a malformed id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/chefs/break-jobs/nope", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid job ID")
	})
}
