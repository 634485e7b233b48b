package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Jorell/stylehaven-api/controllers"
	"github.com/Jorell/stylehaven-api/models"
	"github.com/Jorell/stylehaven-api/routes"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func newOrderRouter(mt *mtest.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	orders := &models.OrderModel{Collection: mt.Coll}
	products := &models.ProductModel{Collection: mt.Coll}

	server := gin.New()
	routes.OrderRoutes(server, controllers.NewOrderController(orders, products))
	return server
}

func doJSON(server *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func orderPayload() map[string]any {
	return map[string]any{
		"user": map[string]any{"username": "alice"},
		"items": []map[string]any{
			{"productId": primitive.NewObjectID().Hex(), "name": "Floral Dress", "price": 29.99, "quantity": 2},
		},
		"shippingAddress": map[string]any{
			"fullName":    "A",
			"phoneNumber": "1",
			"streetName":  "S",
			"region":      "R",
			"postalCode":  "Z",
		},
		"paymentMethod": "cod",
		"subtotal":      59.98,
		"total":         69.98,
	}
}

func mockOrderDoc(id primitive.ObjectID, status string) bson.D {
	now := primitive.NewDateTimeFromTime(time.Now().UTC())
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "user", Value: bson.D{{Key: "username", Value: "alice"}}},
		{Key: "items", Value: bson.A{bson.D{
			{Key: "name", Value: "Floral Dress"},
			{Key: "price", Value: 29.99},
			{Key: "quantity", Value: 2},
		}}},
		{Key: "shippingAddress", Value: bson.D{
			{Key: "fullName", Value: "A"},
			{Key: "phoneNumber", Value: "1"},
			{Key: "region", Value: "R"},
			{Key: "postalCode", Value: "Z"},
			{Key: "streetName", Value: "S"},
		}},
		{Key: "paymentMethod", Value: "cod"},
		{Key: "subtotal", Value: 59.98},
		{Key: "shipping", Value: 10.0},
		{Key: "tax", Value: 0.0},
		{Key: "total", Value: 69.98},
		{Key: "status", Value: status},
		{Key: "inventoryApplied", Value: false},
		{Key: "createdAt", Value: now},
		{Key: "updatedAt", Value: now},
	}
}

func TestCreateOrderEndpoint(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("valid submission returns 201 with a pending order", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(), // order insert
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}), // stock adjustment
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}), // inventoryApplied flag
		)

		server := newOrderRouter(mt)
		recorder := doJSON(server, http.MethodPost, "/orders", orderPayload())

		require.Equal(mt.T, http.StatusCreated, recorder.Code)
		body := decodeBody(mt.T, recorder)
		assert.Equal(mt.T, true, body["success"])

		order := body["order"].(map[string]any)
		assert.Equal(mt.T, "pending", order["status"])
		assert.Equal(mt.T, float64(10), order["shipping"])
		assert.Equal(mt.T, true, order["inventoryApplied"])
	})

	mt.Run("inventory failure still returns 201", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(), // order insert
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}),          // zero-matched decrement
			mtest.CreateCursorResponse(0, "stylehaven.products", mtest.FirstBatch, bson.D{{Key: "n", Value: 1}}), // product exists: out of stock
		)

		server := newOrderRouter(mt)
		recorder := doJSON(server, http.MethodPost, "/orders", orderPayload())

		require.Equal(mt.T, http.StatusCreated, recorder.Code)
		body := decodeBody(mt.T, recorder)
		order := body["order"].(map[string]any)
		assert.Equal(mt.T, "pending", order["status"])
		assert.Equal(mt.T, false, order["inventoryApplied"])
	})

	mt.Run("missing required fields returns 400 and persists nothing", func(mt *mtest.T) {
		server := newOrderRouter(mt)

		payload := orderPayload()
		delete(payload, "paymentMethod")
		recorder := doJSON(server, http.MethodPost, "/orders", payload)

		require.Equal(mt.T, http.StatusBadRequest, recorder.Code)
		body := decodeBody(mt.T, recorder)
		assert.Equal(mt.T, false, body["success"])
		assert.Equal(mt.T, "missing required order fields", body["error"])
	})

	mt.Run("empty item list returns 400", func(mt *mtest.T) {
		server := newOrderRouter(mt)

		payload := orderPayload()
		payload["items"] = []map[string]any{}
		recorder := doJSON(server, http.MethodPost, "/orders", payload)

		require.Equal(mt.T, http.StatusBadRequest, recorder.Code)
		assert.Equal(mt.T, "order must contain at least one item", decodeBody(mt.T, recorder)["error"])
	})

	mt.Run("incomplete shipping address returns 400", func(mt *mtest.T) {
		server := newOrderRouter(mt)

		payload := orderPayload()
		payload["shippingAddress"] = map[string]any{"fullName": "A", "phoneNumber": "1"}
		recorder := doJSON(server, http.MethodPost, "/orders", payload)

		require.Equal(mt.T, http.StatusBadRequest, recorder.Code)
		assert.Equal(mt.T, "missing required shipping address fields", decodeBody(mt.T, recorder)["error"])
	})

	mt.Run("unrecognized payment method returns 400", func(mt *mtest.T) {
		server := newOrderRouter(mt)

		payload := orderPayload()
		payload["paymentMethod"] = "cheque"
		recorder := doJSON(server, http.MethodPost, "/orders", payload)

		require.Equal(mt.T, http.StatusBadRequest, recorder.Code)
		assert.Equal(mt.T, "invalid payment method", decodeBody(mt.T, recorder)["error"])
	})
}

func TestGetOrderEndpoints(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("list all orders", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "stylehaven.orders", mtest.FirstBatch, mockOrderDoc(id, "pending")))

		server := newOrderRouter(mt)
		recorder := doJSON(server, http.MethodGet, "/orders", nil)

		require.Equal(mt.T, http.StatusOK, recorder.Code)
		body := decodeBody(mt.T, recorder)
		assert.Equal(mt.T, true, body["success"])
		assert.Len(mt.T, body["orders"], 1)
	})

	mt.Run("list a buyer's orders", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "stylehaven.orders", mtest.FirstBatch, mockOrderDoc(id, "pending")))

		server := newOrderRouter(mt)
		recorder := doJSON(server, http.MethodGet, "/orders/user/alice", nil)

		require.Equal(mt.T, http.StatusOK, recorder.Code)
		assert.Len(mt.T, decodeBody(mt.T, recorder)["orders"], 1)
	})

	mt.Run("get by id returns 404 when absent", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "stylehaven.orders", mtest.FirstBatch))

		server := newOrderRouter(mt)
		recorder := doJSON(server, http.MethodGet, "/orders/"+primitive.NewObjectID().Hex(), nil)

		require.Equal(mt.T, http.StatusNotFound, recorder.Code)
		assert.Equal(mt.T, false, decodeBody(mt.T, recorder)["success"])
	})

	mt.Run("get by id rejects malformed ids", func(mt *mtest.T) {
		server := newOrderRouter(mt)
		recorder := doJSON(server, http.MethodGet, "/orders/invalid-id", nil)

		require.Equal(mt.T, http.StatusBadRequest, recorder.Code)
		assert.Equal(mt.T, "invalid order ID", decodeBody(mt.T, recorder)["error"])
	})
}

func TestUpdateOrderStatusEndpoint(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("legal transition returns the updated order", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "stylehaven.orders", mtest.FirstBatch, mockOrderDoc(id, "pending")),
			mtest.CreateSuccessResponse(bson.E{Key: "value", Value: mockOrderDoc(id, "processing")}),
		)

		server := newOrderRouter(mt)
		recorder := doJSON(server, http.MethodPut, "/orders/"+id.Hex()+"/status", map[string]any{"status": "processing"})

		require.Equal(mt.T, http.StatusOK, recorder.Code)
		body := decodeBody(mt.T, recorder)
		assert.Equal(mt.T, true, body["success"])
		assert.Equal(mt.T, "processing", body["order"].(map[string]any)["status"])
	})

	mt.Run("unknown status returns 400", func(mt *mtest.T) {
		server := newOrderRouter(mt)
		recorder := doJSON(server, http.MethodPut, "/orders/"+primitive.NewObjectID().Hex()+"/status", map[string]any{"status": "archived"})

		require.Equal(mt.T, http.StatusBadRequest, recorder.Code)
		assert.Equal(mt.T, "invalid status", decodeBody(mt.T, recorder)["error"])
	})

	mt.Run("illegal transition returns 400", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "stylehaven.orders", mtest.FirstBatch, mockOrderDoc(id, "processing")),
		)

		server := newOrderRouter(mt)
		recorder := doJSON(server, http.MethodPut, "/orders/"+id.Hex()+"/status", map[string]any{"status": "pending"})

		require.Equal(mt.T, http.StatusBadRequest, recorder.Code)
		assert.Equal(mt.T, "invalid status transition from processing to pending", decodeBody(mt.T, recorder)["error"])
	})

	mt.Run("missing order returns 404", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "stylehaven.orders", mtest.FirstBatch))

		server := newOrderRouter(mt)
		recorder := doJSON(server, http.MethodPut, "/orders/"+primitive.NewObjectID().Hex()+"/status", map[string]any{"status": "processing"})

		require.Equal(mt.T, http.StatusNotFound, recorder.Code)
	})
}

func TestDeleteOrderEndpoint(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("deletes an existing order", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		server := newOrderRouter(mt)
		recorder := doJSON(server, http.MethodDelete, "/orders/"+primitive.NewObjectID().Hex(), nil)

		require.Equal(mt.T, http.StatusOK, recorder.Code)
		assert.Equal(mt.T, true, decodeBody(mt.T, recorder)["success"])
	})

	mt.Run("missing order returns 404", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		server := newOrderRouter(mt)
		recorder := doJSON(server, http.MethodDelete, "/orders/"+primitive.NewObjectID().Hex(), nil)

		require.Equal(mt.T, http.StatusNotFound, recorder.Code)
	})
}
