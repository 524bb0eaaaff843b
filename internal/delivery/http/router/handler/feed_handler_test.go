package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"bitefeed/internal/delivery/http/response"
	"bitefeed/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeResponse(t *testing.T, body []byte) response.Response {
	t.Helper()

	var envelope response.Response
	require.NoError(t, json.Unmarshal(body, &envelope))

	return envelope
}

func TestFeedHandler_GetFeed_ReturnsRestaurants(t *testing.T) {
	feedUC := &stubFeedUsecase{restaurants: []*entity.Restaurant{
		testRestaurant("1", "Sage Bistro"),
		testRestaurant("2", "Ramen House"),
	}}
	h := newTestFeedHandler(feedUC, newStubSavedUsecase())

	c, rec := newTestContext(t, http.MethodGet, "/feed?vibe=dining", "")

	require.NoError(t, h.GetFeed(c))
	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeResponse(t, rec.Body.Bytes())
	assert.True(t, envelope.Success)

	var data FeedResponse
	raw, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &data))

	assert.Equal(t, "dining", data.Vibe)
	assert.Equal(t, "Washington DC", data.Area)
	require.Len(t, data.Restaurants, 2)
	assert.Equal(t, "Sage Bistro", data.Restaurants[0].Name)
	assert.Equal(t, 20, data.Restaurants[0].DiscountPercentage)
	assert.Equal(t, []string{"18:00", "18:30"}, data.Restaurants[0].TimeSlots)
	assert.False(t, data.Restaurants[0].Saved)
}

func TestFeedHandler_GetFeed_MarksSavedForSignedInCaller(t *testing.T) {
	feedUC := &stubFeedUsecase{restaurants: []*entity.Restaurant{testRestaurant("1", "Sage Bistro")}}
	savedUC := newStubSavedUsecase()
	savedUC.saved["1"] = true
	h := newTestFeedHandler(feedUC, savedUC)

	c, rec := newTestContext(t, http.MethodGet, "/feed?vibe=dining", "")
	signIn(c, "user-1", "diner@example.com")

	require.NoError(t, h.GetFeed(c))
	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeResponse(t, rec.Body.Bytes())

	var data FeedResponse
	raw, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &data))

	require.Len(t, data.Restaurants, 1)
	assert.True(t, data.Restaurants[0].Saved)
}

func TestFeedHandler_GetFeed_RejectsMalformedCoordinates(t *testing.T) {
	feedUC := &stubFeedUsecase{}
	h := newTestFeedHandler(feedUC, newStubSavedUsecase())

	c, rec := newTestContext(t, http.MethodGet, "/feed?lat=abc&lng=-77.0", "")

	require.NoError(t, h.GetFeed(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	envelope := decodeResponse(t, rec.Body.Bytes())
	assert.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "INVALID_COORDINATES", envelope.Error.Code)
}

func TestFeedHandler_GetFeed_UnknownAreaFallsBackToDefault(t *testing.T) {
	feedUC := &stubFeedUsecase{restaurants: []*entity.Restaurant{testRestaurant("1", "Sage Bistro")}}
	h := newTestFeedHandler(feedUC, newStubSavedUsecase())

	c, rec := newTestContext(t, http.MethodGet, "/feed?area=Atlantis", "")

	require.NoError(t, h.GetFeed(c))
	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeResponse(t, rec.Body.Bytes())

	var data FeedResponse
	raw, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &data))

	assert.Equal(t, "Washington DC", data.Area)
}

func TestFeedHandler_GetRestaurant_ReturnsBookingOptions(t *testing.T) {
	restaurant := testRestaurant("1", "Sage Bistro")
	restaurant.Vibes = []entity.Vibe{entity.VibeDining, entity.VibeBrunch}
	discount := 25
	restaurant.Overrides = map[entity.Vibe]entity.VibeDetails{
		entity.VibeBrunch: {
			Description:        "Weekend brunch with bottomless mimosas",
			TimeSlots:          []string{"10:00", "10:30"},
			DiscountPercentage: &discount,
		},
	}

	feedUC := &stubFeedUsecase{restaurants: []*entity.Restaurant{restaurant}}
	h := newTestFeedHandler(feedUC, newStubSavedUsecase())

	c, rec := newTestContext(t, http.MethodGet, "/restaurants/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, h.GetRestaurant(c))
	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeResponse(t, rec.Body.Bytes())

	var data RestaurantDetailResponse
	raw, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &data))

	assert.Equal(t, "Sage Bistro", data.Name)
	require.Contains(t, data.BookingOptions, "dining")
	require.Contains(t, data.BookingOptions, "brunch")
	assert.Equal(t, 25, data.BookingOptions["brunch"].DiscountPercentage)
	assert.Equal(t, []string{"10:00", "10:30"}, data.BookingOptions["brunch"].TimeSlots)
	assert.Equal(t, "Weekend brunch with bottomless mimosas", data.BookingOptions["brunch"].Description)
	assert.Equal(t, 20, data.BookingOptions["dining"].DiscountPercentage)
}

func TestFeedHandler_GetRestaurant_NotFound(t *testing.T) {
	feedUC := &stubFeedUsecase{}
	h := newTestFeedHandler(feedUC, newStubSavedUsecase())

	c, rec := newTestContext(t, http.MethodGet, "/restaurants/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	require.NoError(t, h.GetRestaurant(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	envelope := decodeResponse(t, rec.Body.Bytes())
	assert.False(t, envelope.Success)
}
