package queries_test

import (
	"testing"

	"github.com/ghk0409/ongs-eats-backend/internal/core/application/usecases/queries"
	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/order"
	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/user"
	"github.com/ghk0409/ongs-eats-backend/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type GetOrderQueryHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler queries.GetOrderQueryHandler

	customer *user.User
	owner    *user.User
	seeded   *order.Order
}

func (s *GetOrderQueryHandlerTestSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.handler = queries.NewGetOrderQueryHandler(s.db)

	s.customer = seedUser(s.T(), s.db, "customer@ongs.dev", user.Customer)
	s.owner = seedUser(s.T(), s.db, "owner@ongs.dev", user.Owner)
	rest := seedRestaurant(s.T(), s.db, "BBQ House", s.owner.ID(), nil)

	item, err := order.NewItem(3, []order.ItemOption{{Name: "Size", Choice: "L"}})
	s.Require().NoError(err)
	s.seeded = seedOrder(s.T(), s.db, s.customer.ID(), rest.ID(), s.owner.ID(), []order.Item{item}, 1200)
}

func (s *GetOrderQueryHandlerTestSuite) TestHandle_CustomerSeesOwnOrderWithItems() {
	query, err := queries.NewGetOrderQuery(s.customer, s.seeded.ID())
	s.Require().NoError(err)

	result, err := s.handler.Handle(s.T().Context(), query)
	s.Require().NoError(err)
	s.Equal(s.seeded.ID(), result.ID)
	s.Equal("Pending", result.Status)
	s.Require().NotNil(result.Total)
	s.Equal(int64(1200), *result.Total)
	s.Require().Len(result.Items, 1)
	s.Equal(int64(3), result.Items[0].DishID)
	s.Require().Len(result.Items[0].Options, 1)
	s.Equal("Size", result.Items[0].Options[0].Name)
	s.Equal("L", result.Items[0].Options[0].Choice)
}

func (s *GetOrderQueryHandlerTestSuite) TestHandle_OwnerSeesRestaurantOrder() {
	query, err := queries.NewGetOrderQuery(s.owner, s.seeded.ID())
	s.Require().NoError(err)

	result, err := s.handler.Handle(s.T().Context(), query)
	s.Require().NoError(err)
	s.Equal(s.seeded.ID(), result.ID)
}

func (s *GetOrderQueryHandlerTestSuite) TestHandle_StrangerGetsPermissionDenied() {
	stranger := seedUser(s.T(), s.db, "stranger@ongs.dev", user.Customer)

	query, err := queries.NewGetOrderQuery(stranger, s.seeded.ID())
	s.Require().NoError(err)

	_, err = s.handler.Handle(s.T().Context(), query)
	s.Require().Error(err)
	s.ErrorIs(err, errs.ErrPermissionDenied)
	s.NotErrorIs(err, errs.ErrObjectNotFound)
}

func (s *GetOrderQueryHandlerTestSuite) TestHandle_MissingOrderIsNotFound() {
	query, err := queries.NewGetOrderQuery(s.customer, 99999)
	s.Require().NoError(err)

	_, err = s.handler.Handle(s.T().Context(), query)
	s.Require().Error(err)
	s.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestGetOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderQueryHandlerTestSuite))
}
