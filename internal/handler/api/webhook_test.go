//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"github.com/performlikemj/neighborhood-united-sub004/internal/handler/api"
	"github.com/performlikemj/neighborhood-united-sub004/internal/pkg/config"
	"github.com/performlikemj/neighborhood-united-sub004/internal/pkg/errs"
	"github.com/performlikemj/neighborhood-united-sub004/tests/common/httptest"
	commandsmock "github.com/performlikemj/neighborhood-united-sub004/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WebhookHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOrderCommands
	handler      *api.WebhookHandler
	secret       string
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOrderCommands(s.mockCtrl)
	paymentCfg := config.NewTestConfig().Payment
	s.secret = paymentCfg.WebhookSecret
	s.handler = api.NewWebhookHandler(s.mockCommands, paymentCfg)

	s.router.POST("/webhooks/payment-confirmed", s.handler.PaymentConfirmed)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func (s *WebhookHandlerTestSuite) TestPaymentConfirmed() {
	url := "/webhooks/payment-confirmed"
	reqBody := map[string]any{"session_id": "cs_123", "event_id": "evt_1"}
	secretHeader := map[string]string{"X-Webhook-Secret": s.secret}

	s.Run("success: confirms the order behind the session", func() {
		s.mockCommands.EXPECT().ConfirmBySession(gomock.Any(), "cs_123", "evt_1").
			Return(nil).Times(1)
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "", secretHeader)

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("confirmed", body["status"])
	})

	s.Run("success: a delivery that lost the race is acknowledged as ignored", func() {
		s.mockCommands.EXPECT().ConfirmBySession(gomock.Any(), "cs_123", "evt_1").
			Return(errs.ErrOrderNotPayable).Times(1)
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "", secretHeader)

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("ignored", body["status"])
	})

	s.Run("error: 401 Unauthorized with a wrong secret", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "",
			map[string]string{"X-Webhook-Secret": "whsec_wrong"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid webhook secret")
	})

	s.Run("error: 401 Unauthorized without the secret header", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("error: 404 Not Found for an unknown session", func() {
		s.mockCommands.EXPECT().ConfirmBySession(gomock.Any(), "cs_123", "evt_1").
			Return(errs.ErrUnknownPaymentSession).Times(1)
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "", secretHeader)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Unknown payment session")
	})

	s.Run("error: 400 Bad Request on an incomplete payload", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url,
			map[string]any{"session_id": "cs_123"}, "", secretHeader)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
