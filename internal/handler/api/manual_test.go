//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"museum-booking/internal/domain/manual"
	"museum-booking/internal/handler/api"
	reqdto "museum-booking/internal/handler/dto/request"
	resdto "museum-booking/internal/handler/dto/response"
	"museum-booking/internal/pkg/clock"
	"museum-booking/internal/pkg/errs"
	"museum-booking/tests/common/builder"
	"museum-booking/tests/common/httptest"
	manualopsmock "museum-booking/tests/mock/manualops"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ManualBookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockQueries  *manualopsmock.MockQueries
	mockCommands *manualopsmock.MockCommands
	now          time.Time
}

func (s *ManualBookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = manualopsmock.NewMockQueries(s.mockCtrl)
	s.mockCommands = manualopsmock.NewMockCommands(s.mockCtrl)
	s.now = time.Date(2025, 1, 1, 17, 40, 0, 0, time.UTC)
	h := api.NewManualBookingHandler(s.mockQueries, s.mockCommands, clock.NewMockClock(s.now))

	s.router.GET("/manual-bookings", h.List)
	s.router.GET("/manual-bookings/:id", h.Get)
	s.router.PATCH("/manual-bookings/:id/complete", h.Complete)
}

func (s *ManualBookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestManualBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(ManualBookingHandlerTestSuite))
}

func (s *ManualBookingHandlerTestSuite) TestList() {
	s.Run("success: pending filter with overdue flag", func() {
		b := builder.NewManualBookingBuilder().BuildDomain()
		pending := manual.StatusPending
		s.mockQueries.EXPECT().List(gomock.Any(), &pending, 10).Return([]*manual.Booking{b}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/manual-bookings?status=pending&limit=10", nil)

		var got resdto.ManualBookingListResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Require().Equal(1, got.Count)

		want := &resdto.ManualBookingResponse{
			ID:             b.ID(),
			Reference:      "SM250101ABCD",
			Status:         "pending",
			Museum:         "main",
			VisitorName:    "张三",
			IDNumber:       "610103********1234",
			FailureSummary: b.FailureSummary(),
			Overdue:        true,
		}
		ignore := cmpopts.IgnoreFields(resdto.ManualBookingResponse{},
			"VisitDate", "TimeSlot", "Contact", "Visitors", "Instructions", "Deadline", "CreatedAt", "CompletedAt")
		if diff := cmp.Diff(want, got.Items[0], ignore); diff != "" {
			s.T().Errorf("ManualBookingResponse mismatch (-want +got):\n%s", diff)
		}
		s.Len(got.Items[0].Instructions, 5)
	})

	s.Run("success: no filter uses default limit", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), nil, 0).Return(nil, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/manual-bookings", nil)

		var got resdto.ManualBookingListResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Zero(got.Count)
	})

	s.Run("error: invalid status", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/manual-bookings?status=cancelled", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid status filter")
	})

	s.Run("error: invalid limit", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/manual-bookings?limit=-1", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid limit")
	})
}

func (s *ManualBookingHandlerTestSuite) TestGet() {
	s.Run("error: malformed id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/manual-bookings/not-a-uuid", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid manual booking ID format")
	})

	s.Run("error: not found", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().Get(gomock.Any(), id).Return(nil, errs.ErrManualBookingNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/manual-bookings/"+id.String(), nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Manual booking not found")
	})
}

func (s *ManualBookingHandlerTestSuite) TestComplete() {
	id := uuid.New()
	url := "/manual-bookings/" + id.String() + "/complete"

	s.Run("success", func() {
		b := builder.NewManualBookingBuilder().BuildCompleted("SM20250101-0001", s.now)
		s.mockCommands.EXPECT().Complete(gomock.Any(), id, "SM20250101-0001").Return(b, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			reqdto.CompleteManualBookingRequest{OfficialReference: "SM20250101-0001"})

		var got resdto.ManualBookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Equal("completed", got.Status)
		s.Equal("SM20250101-0001", got.OfficialReference)
		s.False(got.Overdue)
	})

	s.Run("error: already completed", func() {
		s.mockCommands.EXPECT().Complete(gomock.Any(), id, "AGAIN").Return(nil, errs.ErrManualBookingCompleted)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			reqdto.CompleteManualBookingRequest{OfficialReference: "AGAIN"})
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "already completed")
	})

	s.Run("error: invalid reference", func() {
		s.mockCommands.EXPECT().Complete(gomock.Any(), id, "   ").Return(nil, errs.ErrInvalidOfficialRef)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			reqdto.CompleteManualBookingRequest{OfficialReference: "   "})
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid official reference")
	})

	s.Run("error: missing body field", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{})
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})
}
