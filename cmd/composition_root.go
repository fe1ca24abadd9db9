package cmd

import (
	"log/slog"

	"grouporders/internal/adapters/in/csvintake"
	"grouporders/internal/adapters/out/postgres"
	"grouporders/internal/core/application/usecases/commands"
	"grouporders/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	var f commands.IntakeUoWFactory = FuncIntakeUoWFactory(func() commands.IntakeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateGroupPendingOrdersCommandHandler() commands.GroupPendingOrdersCommandHandler {
	var f commands.GroupingUoWFactory = FuncGroupingUoWFactory(func() commands.GroupingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewGroupPendingOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeGroupOrderStatusCommandHandler() commands.ChangeGroupOrderStatusCommandHandler {
	var f commands.GroupingUoWFactory = FuncGroupingUoWFactory(func() commands.GroupingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeGroupOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateSeedCatalogCommandHandler() commands.SeedCatalogCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSeedCatalogCommandHandler(f)
}

func (c *CompositionRoot) CreateOrderLoader(logger *slog.Logger) *csvintake.Loader {
	handler := c.CreateSubmitOrderCommandHandler()
	return csvintake.NewLoader(&handler, logger)
}

func (c *CompositionRoot) CreateGetRecentGroupOrdersQueryHandler() queries.GetRecentGroupOrdersQueryHandler {
	return queries.NewGetRecentGroupOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUngroupedOrdersQueryHandler() queries.GetUngroupedOrdersQueryHandler {
	return queries.NewGetUngroupedOrdersQueryHandler(c.gormDB)
}

type FuncIntakeUoWFactory func() commands.IntakeUoW

func (f FuncIntakeUoWFactory) Create() commands.IntakeUoW {
	return f()
}

type FuncGroupingUoWFactory func() commands.GroupingUoW

func (f FuncGroupingUoWFactory) Create() commands.GroupingUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}
