// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package controllers

import (
	"go.uber.org/fx"
)

// Module provides all controller constructors
var Module = fx.Options(
	fx.Provide(NewVaptReportController),
	fx.Provide(NewTestPlanController),
	fx.Provide(NewClientController),
	fx.Provide(NewApplicationController),
	fx.Provide(NewDefectController),
	fx.Provide(NewDashboardController),
	fx.Provide(NewAuthController),
)
