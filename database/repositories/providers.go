// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package repositories

import (
	"github.com/rootlockdefense/defectrix/shared"
	"go.uber.org/fx"
)

// Module provides all repository constructors as their interfaces
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewUserRepository, fx.As(new(shared.UserRepository)))),
	fx.Provide(fx.Annotate(NewClientRepository, fx.As(new(shared.ClientRepository)))),
	fx.Provide(fx.Annotate(NewApplicationRepository, fx.As(new(shared.ApplicationRepository)))),
	fx.Provide(fx.Annotate(NewTestPlanRepository, fx.As(new(shared.TestPlanRepository)))),
	fx.Provide(fx.Annotate(NewVaptReportRepository, fx.As(new(shared.VaptReportRepository)))),
	fx.Provide(fx.Annotate(NewVaptTestCaseRepository, fx.As(new(shared.VaptTestCaseRepository)))),
	fx.Provide(fx.Annotate(NewVaptPocRepository, fx.As(new(shared.VaptPocRepository)))),
	fx.Provide(fx.Annotate(NewDefectRepository, fx.As(new(shared.DefectRepository)))),
)
