package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"rental/config"
	"rental/internal/delivery/api/middleware"
	"rental/internal/delivery/api/router"
	"rental/internal/delivery/api/router/handler"
	deliverycontext "rental/internal/delivery/context"
	"rental/internal/domain/entity"
	domainerrors "rental/internal/domain/errors"
	"rental/internal/domain/geo"
	"rental/internal/domain/service"
	mockservice "rental/internal/mocks/service"
	mockusecase "rental/internal/mocks/usecase"
	"rental/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validToken = "valid-token"

type testAPI struct {
	e            *echo.Echo
	tokens       *mockservice.MockTokenService
	geocoder     *mockservice.MockGeocoder
	users        *mockusecase.MockUserUsecase
	availability *mockusecase.MockAvailabilityUsecase
	bookings     *mockusecase.MockBookingUsecase
	projections  *mockusecase.MockProjectionUsecase
	properties   *mockusecase.MockPropertyUsecase
	reviews      *mockusecase.MockReviewUsecase
	callerID     uuid.UUID
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	api := &testAPI{
		tokens:       mockservice.NewMockTokenService(t),
		geocoder:     mockservice.NewMockGeocoder(t),
		users:        mockusecase.NewMockUserUsecase(t),
		availability: mockusecase.NewMockAvailabilityUsecase(t),
		bookings:     mockusecase.NewMockBookingUsecase(t),
		projections:  mockusecase.NewMockProjectionUsecase(t),
		properties:   mockusecase.NewMockPropertyUsecase(t),
		reviews:      mockusecase.NewMockReviewUsecase(t),
		callerID:     uuid.New(),
	}
	api.tokens.EXPECT().ValidateToken(validToken).Return(&service.Claims{UserID: api.callerID}, nil).Maybe()
	api.tokens.EXPECT().ValidateToken(mock.MatchedBy(func(s string) bool { return s != validToken })).
		Return(nil, assert.AnError).Maybe()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	api.e = NewEcho(cfg, logger, router.RouterParams{
		AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{UserUC: api.users, Logger: logger}),
		SearchHandler: handler.NewSearchHandler(handler.SearchHandlerParams{
			AvailabilityUC: api.availability, Geocoder: api.geocoder, Logger: logger,
		}),
		PropertyHandler: handler.NewPropertyHandler(handler.PropertyHandlerParams{
			PropertyUC: api.properties, ProjectionUC: api.projections, Logger: logger,
		}),
		BookingHandler: handler.NewBookingHandler(handler.BookingHandlerParams{
			BookingUC: api.bookings, ProjectionUC: api.projections, Logger: logger,
		}),
		ProfileHandler: handler.NewProfileHandler(handler.ProfileHandlerParams{ProjectionUC: api.projections, Logger: logger}),
		ReviewHandler:  handler.NewReviewHandler(handler.ReviewHandlerParams{ReviewUC: api.reviews, Logger: logger}),
		AuthMiddleware: middleware.NewAuthMiddleware(api.tokens),
	})

	return api
}

func (a *testAPI) do(method, target, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details string `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}

	return t
}

func TestHealth_RequestID(t *testing.T) {
	api := newTestAPI(t)

	t.Run("generated", func(t *testing.T) {
		rec := api.do(http.MethodGet, "/health", "", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		env := decode(t, rec)
		assert.NotEmpty(t, env.Meta.RequestID)
		assert.Equal(t, env.Meta.RequestID, rec.Header().Get(deliverycontext.HeaderXRequestID))
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "trace-123")
		rec := httptest.NewRecorder()
		api.e.ServeHTTP(rec, req)

		assert.Equal(t, "trace-123", decode(t, rec).Meta.RequestID)
	})

	t.Run("malformed header replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "bad id\nwith newline")
		rec := httptest.NewRecorder()
		api.e.ServeHTTP(rec, req)

		id := decode(t, rec).Meta.RequestID
		assert.NotEqual(t, "bad id\nwith newline", id)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
	})
}

func TestSearch(t *testing.T) {
	propertyID := uuid.New()
	hit := &usecase.AvailableProperty{
		Property:    &entity.Property{ID: propertyID, Title: "Cabin", Coordinate: &geo.Coordinate{Lat: 40, Lng: -74}},
		IsAvailable: true,
	}

	t.Run("invalid dates", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(http.MethodGet, "/search?start_date=2025-03-10&end_date=2025-03-01", "", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_DATE_RANGE", decode(t, rec).Error.Code)
	})

	t.Run("negative radius", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(http.MethodGet, "/search?start_date=2025-03-01&end_date=2025-03-02&radius_miles=-1", "", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
	})

	t.Run("place resolved", func(t *testing.T) {
		api := newTestAPI(t)
		point := &geo.Coordinate{Lat: 40.7, Lng: -74}
		api.geocoder.EXPECT().Resolve(mock.Anything, "place-1").Return(point, nil).Once()
		api.availability.EXPECT().Search(mock.Anything, mock.MatchedBy(func(in *usecase.SearchInput) bool {
			return in.Point == point && in.RadiusMiles == 10 &&
				in.StartDate.Equal(day("2025-03-01")) && in.EndDate.Equal(day("2025-03-05"))
		})).Return([]*usecase.AvailableProperty{hit}, nil).Once()

		rec := api.do(http.MethodGet, "/search?start_date=2025-03-01&end_date=2025-03-05&place_id=place-1&radius_miles=10", "", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var out handler.SearchResponse
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &out))
		assert.True(t, out.RadiusApplied)
		require.Len(t, out.AvailableProperties, 1)
		assert.Equal(t, propertyID, out.AvailableProperties[0].ID)
		assert.True(t, out.AvailableProperties[0].IsAvailable)
	})

	t.Run("place unresolved degrades to full catalog", func(t *testing.T) {
		api := newTestAPI(t)
		api.geocoder.EXPECT().Resolve(mock.Anything, "nowhere").
			Return(nil, &domainerrors.GeocodeUnavailableError{PlaceID: "nowhere", Cause: assert.AnError}).Once()
		api.availability.EXPECT().Search(mock.Anything, mock.MatchedBy(func(in *usecase.SearchInput) bool {
			return in.Point == nil
		})).Return([]*usecase.AvailableProperty{hit}, nil).Once()

		rec := api.do(http.MethodGet, "/search?start_date=2025-03-01&end_date=2025-03-05&place_id=nowhere", "", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var out handler.SearchResponse
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &out))
		assert.False(t, out.RadiusApplied)
		assert.Len(t, out.AvailableProperties, 1)
	})

	t.Run("explicit coordinates skip the geocoder", func(t *testing.T) {
		api := newTestAPI(t)
		api.availability.EXPECT().Search(mock.Anything, mock.MatchedBy(func(in *usecase.SearchInput) bool {
			return in.Point != nil && in.Point.Lat == 10 && in.Point.Lng == 20
		})).Return(nil, nil).Once()

		rec := api.do(http.MethodGet, "/search?start_date=2025-03-01&end_date=2025-03-05&lat=10&lng=20&place_id=ignored", "", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"available_properties":[],"radius_applied":true}`, string(decode(t, rec).Data))
	})

	t.Run("coordinate out of range", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(http.MethodGet, "/search?start_date=2025-03-01&end_date=2025-03-05&lat=91&lng=0", "", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_COORDINATE", decode(t, rec).Error.Code)
	})
}

func TestCreateBooking(t *testing.T) {
	propertyID := uuid.New()
	body := `{"property_id":"` + propertyID.String() + `","start_date":"2025-03-03","end_date":"2025-03-10"}`

	t.Run("missing token", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(http.MethodPost, "/api/v1/bookings", body, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "MISSING_TOKEN", decode(t, rec).Error.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(http.MethodPost, "/api/v1/bookings", body, "forged")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_TOKEN", decode(t, rec).Error.Code)
	})

	t.Run("validation", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(http.MethodPost, "/api/v1/bookings", `{"start_date":"2025-03-03","end_date":"2025-03-10"}`, validToken)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Contains(t, env.Error.Details, "property_id")
	})

	t.Run("created", func(t *testing.T) {
		api := newTestAPI(t)
		bookingID := uuid.New()
		api.bookings.EXPECT().Create(mock.Anything, &usecase.CreateBookingInput{
			PropertyID: propertyID,
			RenterID:   api.callerID,
			StartDate:  day("2025-03-03"),
			EndDate:    day("2025-03-10"),
		}).Return(&entity.Booking{
			ID:         bookingID,
			PropertyID: propertyID,
			RenterID:   api.callerID,
			StartDate:  day("2025-03-03"),
			EndDate:    day("2025-03-10"),
		}, nil).Once()

		rec := api.do(http.MethodPost, "/api/v1/bookings", body, validToken)

		require.Equal(t, http.StatusCreated, rec.Code)
		var out handler.BookingResponse
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &out))
		assert.Equal(t, bookingID, out.ID)
		assert.Equal(t, "2025-03-03", out.StartDate)
		assert.Equal(t, 7, out.Nights)
	})

	t.Run("overlap", func(t *testing.T) {
		api := newTestAPI(t)
		api.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, &domainerrors.OverlapError{
			PropertyID:     propertyID,
			ConflictStart:  day("2025-03-01"),
			ConflictEnd:    day("2025-03-05"),
			RequestedStart: day("2025-03-03"),
			RequestedEnd:   day("2025-03-10"),
		}).Once()

		rec := api.do(http.MethodPost, "/api/v1/bookings", body, validToken)

		assert.Equal(t, http.StatusConflict, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "BOOKING_OVERLAP", env.Error.Code)
		assert.Contains(t, env.Error.Details, "2025-03-01..2025-03-05")
	})

	t.Run("busy", func(t *testing.T) {
		api := newTestAPI(t)
		api.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrBookingBusy).Once()

		rec := api.do(http.MethodPost, "/api/v1/bookings", body, validToken)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("unexpected failure", func(t *testing.T) {
		api := newTestAPI(t)
		api.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, assert.AnError).Once()

		rec := api.do(http.MethodPost, "/api/v1/bookings", body, validToken)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "INTERNAL_ERROR", decode(t, rec).Error.Code)
	})
}

func TestUpdateAndDeleteBooking(t *testing.T) {
	bookingID := uuid.New()

	t.Run("partial update keeps start", func(t *testing.T) {
		api := newTestAPI(t)
		api.bookings.EXPECT().Update(mock.Anything, bookingID, api.callerID, mock.MatchedBy(func(in *usecase.UpdateBookingInput) bool {
			return in.StartDate == nil && in.EndDate != nil && in.EndDate.Equal(day("2025-04-02"))
		})).Return(&entity.Booking{
			ID:        bookingID,
			RenterID:  api.callerID,
			StartDate: day("2025-03-30"),
			EndDate:   day("2025-04-02"),
		}, nil).Once()

		rec := api.do(http.MethodPatch, "/api/v1/bookings/"+bookingID.String(), `{"end_date":"2025-04-02"}`, validToken)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bad date", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(http.MethodPatch, "/api/v1/bookings/"+bookingID.String(), `{"start_date":"03/01/2025"}`, validToken)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_DATE_RANGE", decode(t, rec).Error.Code)
	})

	t.Run("not the renter", func(t *testing.T) {
		api := newTestAPI(t)
		api.bookings.EXPECT().Delete(mock.Anything, bookingID, api.callerID).
			Return(domainerrors.ErrBookingOwnershipViolation).Once()

		rec := api.do(http.MethodDelete, "/api/v1/bookings/"+bookingID.String(), "", validToken)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("deleted", func(t *testing.T) {
		api := newTestAPI(t)
		api.bookings.EXPECT().Delete(mock.Anything, bookingID, api.callerID).Return(nil).Once()

		rec := api.do(http.MethodDelete, "/api/v1/bookings/"+bookingID.String(), "", validToken)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(http.MethodDelete, "/api/v1/bookings/not-a-uuid", "", validToken)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ID", decode(t, rec).Error.Code)
	})
}

func TestPropertyBookings_Visibility(t *testing.T) {
	propertyID := uuid.New()
	booking := &entity.Booking{
		ID:         uuid.New(),
		PropertyID: propertyID,
		RenterID:   uuid.New(),
		StartDate:  day("2025-03-01"),
		EndDate:    day("2025-03-05"),
	}

	t.Run("anonymous sees bare ranges", func(t *testing.T) {
		api := newTestAPI(t)
		api.projections.EXPECT().ProjectPropertyBookings(mock.Anything, propertyID, (*uuid.UUID)(nil)).
			Return([]*entity.Booking{booking}, nil).Once()

		rec := api.do(http.MethodGet, "/properties/"+propertyID.String()+"/bookings", "", "")

		require.Equal(t, http.StatusOK, rec.Code)
		data := string(decode(t, rec).Data)
		assert.JSONEq(t, `{"occupied_ranges":[{"start_date":"2025-03-01","end_date":"2025-03-05"}]}`, data)
		assert.NotContains(t, data, booking.RenterID.String())
	})

	t.Run("invalid token is treated as anonymous", func(t *testing.T) {
		api := newTestAPI(t)
		api.projections.EXPECT().ProjectPropertyBookings(mock.Anything, propertyID, (*uuid.UUID)(nil)).
			Return([]*entity.Booking{booking}, nil).Once()

		rec := api.do(http.MethodGet, "/properties/"+propertyID.String()+"/bookings", "", "forged")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("identified viewer", func(t *testing.T) {
		api := newTestAPI(t)
		api.projections.EXPECT().ProjectPropertyBookings(mock.Anything, propertyID, mock.MatchedBy(func(v *uuid.UUID) bool {
			return v != nil && *v == api.callerID
		})).Return([]*entity.Booking{booking}, nil).Once()

		rec := api.do(http.MethodGet, "/properties/"+propertyID.String()+"/bookings", "", validToken)

		require.Equal(t, http.StatusOK, rec.Code)
		var out handler.PropertyBookingsResponse
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &out))
		require.Len(t, out.Bookings, 1)
		assert.Equal(t, booking.ID, out.Bookings[0].ID)
		assert.Empty(t, out.OccupiedRanges)
	})

	t.Run("unknown property", func(t *testing.T) {
		api := newTestAPI(t)
		api.projections.EXPECT().ProjectPropertyBookings(mock.Anything, propertyID, (*uuid.UUID)(nil)).
			Return(nil, domainerrors.ErrPropertyNotFound).Once()

		rec := api.do(http.MethodGet, "/properties/"+propertyID.String()+"/bookings", "", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCreateProperty_Coordinates(t *testing.T) {
	api := newTestAPI(t)
	api.properties.EXPECT().Create(mock.Anything, mock.MatchedBy(func(in *usecase.CreatePropertyInput) bool {
		return in.OwnerID == api.callerID && in.Coordinate != nil && in.Coordinate.Lat == 40.5
	})).Return(&entity.Property{ID: uuid.New(), OwnerID: api.callerID, Title: "Loft"}, nil).Once()

	rec := api.do(http.MethodPost, "/api/v1/properties",
		`{"title":"Loft","price_per_night":120,"latitude":40.5,"longitude":-73.9}`, validToken)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = api.do(http.MethodPost, "/api/v1/properties", `{"title":"Loft","latitude":40.5}`, validToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
}

func TestSignup_HidesPasswordHash(t *testing.T) {
	api := newTestAPI(t)
	api.users.EXPECT().Signup(mock.Anything, &usecase.SignupInput{
		Name: "Ada", Email: "ada@example.com", Password: "correct-horse",
	}).Return(&usecase.AuthOutput{
		AccessToken: "tok",
		User:        &entity.User{ID: uuid.New(), Name: "Ada", Email: "ada@example.com", PasswordHash: "$2a$secret"},
	}, nil).Once()

	rec := api.do(http.MethodPost, "/auth/signup",
		`{"name":"Ada","email":"ada@example.com","password":"correct-horse"}`, "")

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "$2a$secret")
	assert.Contains(t, rec.Body.String(), `"access_token":"tok"`)
}
