//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"lunchbox/internal/domain/lunch"
	"lunchbox/internal/domain/user"
	"lunchbox/internal/handler/api"
	reqdto "lunchbox/internal/handler/dto/request"
	"lunchbox/internal/pkg/errs"
	"lunchbox/internal/usecase/commands"
	"lunchbox/internal/usecase/queries"
	"lunchbox/tests/common/builder"
	"lunchbox/tests/common/httptest"
	"lunchbox/tests/common/testutil"
	commandsmock "lunchbox/tests/mock/commands"
	queriesmock "lunchbox/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LunchHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockLunchCommands
	mockQueries  *queriesmock.MockLunchQueries
	handler      *api.LunchHandler
	userID       uuid.UUID
}

func (s *LunchHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockLunchCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockLunchQueries(s.mockCtrl)
	s.handler = api.NewLunchHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleCustomer)
		c.Next()
	}

	s.router.POST("/lunches", authMiddleware, s.handler.CreateLunch)
	s.router.GET("/lunches", authMiddleware, s.handler.GetUserLunches)
	s.router.GET("/lunches/:id", authMiddleware, s.handler.GetLunch)
	s.router.PATCH("/lunches/:id", authMiddleware, s.handler.RenameLunch)
	s.router.POST("/lunches/:id/items", authMiddleware, s.handler.AddProduct)
	s.router.PUT("/lunches/:id/items/:itemId", authMiddleware, s.handler.SetItemQuantity)
}

func (s *LunchHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLunchHandlerSuite(t *testing.T) {
	suite.Run(t, new(LunchHandlerTestSuite))
}

// ================================================================================
// TestCreateLunch
// ================================================================================

func (s *LunchHandlerTestSuite) TestCreateLunch() {
	url := "/lunches"

	reqBody := builder.NewLunchBuilder().BuildCreateRequestDTO()
	lunchID := uuid.New()

	s.Run("success: returns 201 Created with the new lunch ID", func() {
		s.mockCommands.EXPECT().CreateLunch(gomock.Any(), reqBody, s.userID).
			Return(&commands.CreateLunchResult{LunchID: lunchID}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(lunchID.String(), body["id"])
	})

	s.Run("success: seeded with an initial product", func() {
		productID := uuid.New()
		seeded := builder.NewLunchBuilder().With(func(b *builder.LunchBuilder) {
			b.ProductID = &productID
		}).BuildCreateRequestDTO()

		s.mockCommands.EXPECT().CreateLunch(gomock.Any(), seeded, s.userID).
			Return(&commands.CreateLunchResult{LunchID: lunchID}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, seeded, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request when name is missing", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("name", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "seed product does not exist",
				commandsError:  commands.ErrProductNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Product not found",
			},
			{
				name:           "name rejected by the domain",
				commandsError:  errs.Mark(errs.New("lunch name cannot be empty"), commands.ErrInvalidLunchName),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid lunch name",
			},
			{
				name:           "internal server error",
				commandsError:  errs.Mark(errs.New("failed to create lunch"), commands.ErrDatabaseOperationFailed),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateLunch(gomock.Any(), reqBody, s.userID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestRenameLunch
// ================================================================================

func (s *LunchHandlerTestSuite) TestRenameLunch() {
	lunchID := uuid.New()
	url := "/lunches/" + lunchID.String()
	reqBody := reqdto.RenameLunchRequest{Name: "Renamed lunch"}

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().RenameLunch(gomock.Any(), lunchID, s.userID, reqBody.Name).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request for a malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/lunches/not-a-uuid", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid lunch ID format")
	})

	s.Run("error: 400 Bad Request when name is missing", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("name", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 Not Found for a missing or foreign lunch", func() {
		s.mockCommands.EXPECT().RenameLunch(gomock.Any(), lunchID, s.userID, reqBody.Name).
			Return(commands.ErrLunchNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Lunch not found")
	})
}

// ================================================================================
// TestAddProduct
// ================================================================================

func (s *LunchHandlerTestSuite) TestAddProduct() {
	lunchID := uuid.New()
	productID := uuid.New()
	url := "/lunches/" + lunchID.String() + "/items"
	reqBody := reqdto.AddLunchProductRequest{ProductID: productID}

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().AddProduct(gomock.Any(), lunchID, s.userID, productID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request when product_id is missing", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("product_id", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 Not Found when the product does not exist", func() {
		s.mockCommands.EXPECT().AddProduct(gomock.Any(), lunchID, s.userID, productID).
			Return(commands.ErrProductNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")
	})
}

// ================================================================================
// TestSetItemQuantity
// ================================================================================

func (s *LunchHandlerTestSuite) TestSetItemQuantity() {
	lunchID := uuid.New()
	itemID := uuid.New()
	url := "/lunches/" + lunchID.String() + "/items/" + itemID.String()
	reqBody := reqdto.SetLunchItemQuantityRequest{Quantity: 3}

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().SetItemQuantity(gomock.Any(), lunchID, itemID, s.userID, 3).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: zero quantity removes the line", func() {
		s.mockCommands.EXPECT().SetItemQuantity(gomock.Any(), lunchID, itemID, s.userID, 0).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			reqdto.SetLunchItemQuantityRequest{Quantity: 0}, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request for a negative quantity", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("quantity", -1))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 Bad Request for a malformed item ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut,
			"/lunches/"+lunchID.String()+"/items/not-a-uuid", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid item ID format")
	})

	s.Run("error: 400 Bad Request when the item is not on the lunch", func() {
		s.mockCommands.EXPECT().SetItemQuantity(gomock.Any(), lunchID, itemID, s.userID, 3).
			Return(errs.Mark(errs.New("item not found on lunch"), commands.ErrLunchItemInvalid)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid lunch item")
	})
}

// ================================================================================
// TestGetLunch
// ================================================================================

func (s *LunchHandlerTestSuite) TestGetLunch() {
	returnView := builder.NewLunchBuilder().BuildView()
	url := "/lunches/" + returnView.ID.String()

	s.Run("success: returns 200 OK with items", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(returnView.ID.String(), body["id"])
		s.Equal(returnView.Name, body["name"])

		items, ok := body["items"].([]any)
		s.True(ok)
		s.Len(items, len(returnView.Items))
	})

	s.Run("error: 404 Not Found for a missing or foreign lunch", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, returnView.ID).
			Return(nil, errs.Mark(errs.New("lunch owned by another user"), queries.ErrLunchNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Lunch not found")
	})
}

// ================================================================================
// TestGetUserLunches
// ================================================================================

func (s *LunchHandlerTestSuite) TestGetUserLunches() {
	url := "/lunches"

	s.Run("success: returns 200 OK with the user's lunches", func() {
		items := []*queries.LunchListItem{
			builder.NewLunchBuilder().BuildListItem(),
			builder.NewLunchBuilder().With(func(b *builder.LunchBuilder) {
				b.Name = strings.Repeat("b", lunch.MaxNameLength)
			}).BuildListItem(),
		}
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
