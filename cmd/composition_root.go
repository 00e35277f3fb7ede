package cmd

import (
	"fleettrip/internal/adapters/out/postgres"
	"fleettrip/internal/core/application/usecases/commands"
	"fleettrip/internal/core/application/usecases/queries"

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

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateVehicleCommandHandler() commands.CreateVehicleCommandHandler {
	var f commands.VehicleUoWFactory = FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateVehicleCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateMillCommandHandler() commands.CreateMillCommandHandler {
	var f commands.MillUoWFactory = FuncMillUoWFactory(func() commands.MillUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateMillCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateTripCommandHandler() commands.CreateTripCommandHandler {
	return commands.NewCreateTripCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateChangeTripStatusCommandHandler() commands.ChangeTripStatusCommandHandler {
	return commands.NewChangeTripStatusCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateEditTripCommandHandler() commands.EditTripCommandHandler {
	return commands.NewEditTripCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateDeleteTripCommandHandler() commands.DeleteTripCommandHandler {
	return commands.NewDeleteTripCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateChangeDriverStatusCommandHandler() commands.ChangeDriverStatusCommandHandler {
	return commands.NewChangeDriverStatusCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateChangeVehicleStatusCommandHandler() commands.ChangeVehicleStatusCommandHandler {
	return commands.NewChangeVehicleStatusCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateAssignVehicleDriverCommandHandler() commands.AssignVehicleDriverCommandHandler {
	return commands.NewAssignVehicleDriverCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateEditDriverCommandHandler() commands.EditDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEditDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteDriverCommandHandler() commands.DeleteDriverCommandHandler {
	return commands.NewDeleteDriverCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateEditVehicleCommandHandler() commands.EditVehicleCommandHandler {
	var f commands.VehicleUoWFactory = FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEditVehicleCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteVehicleCommandHandler() commands.DeleteVehicleCommandHandler {
	return commands.NewDeleteVehicleCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateEditMillCommandHandler() commands.EditMillCommandHandler {
	var f commands.MillUoWFactory = FuncMillUoWFactory(func() commands.MillUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEditMillCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteMillCommandHandler() commands.DeleteMillCommandHandler {
	var f commands.MillUoWFactory = FuncMillUoWFactory(func() commands.MillUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteMillCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAllTripsQueryHandler() queries.GetAllTripsQueryHandler {
	return queries.NewGetAllTripsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTripByIDQueryHandler() queries.GetTripByIDQueryHandler {
	return queries.NewGetTripByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllDriversQueryHandler() queries.GetAllDriversQueryHandler {
	return queries.NewGetAllDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllVehiclesQueryHandler() queries.GetAllVehiclesQueryHandler {
	return queries.NewGetAllVehiclesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllMillsQueryHandler() queries.GetAllMillsQueryHandler {
	return queries.NewGetAllMillsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOverdueTripsQueryHandler() queries.GetOverdueTripsQueryHandler {
	return queries.NewGetOverdueTripsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncVehicleUoWFactory func() commands.VehicleUoW

func (f FuncVehicleUoWFactory) Create() commands.VehicleUoW {
	return f()
}

type FuncMillUoWFactory func() commands.MillUoW

func (f FuncMillUoWFactory) Create() commands.MillUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
