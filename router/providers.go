// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package router

import "go.uber.org/fx"

var RouterModule = fx.Options(
	fx.Provide(NewAPIV1Router),
	fx.Provide(NewSessionRouter),
	fx.Provide(NewVaptReportRouter),
	fx.Provide(NewTestPlanRouter),
	fx.Provide(NewClientRouter),
	fx.Provide(NewApplicationRouter),
	fx.Provide(NewDefectRouter),
	fx.Provide(NewDashboardRouter),
)
