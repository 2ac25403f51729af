// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package services

import (
	"github.com/rootlockdefense/defectrix/shared"
	"go.uber.org/fx"
)

// Module provides all service constructors as their interfaces
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewVaptReportService, fx.As(new(shared.VaptReportService)))),
	fx.Provide(fx.Annotate(NewEvidenceService, fx.As(new(shared.EvidenceService)))),
	fx.Provide(fx.Annotate(NewArtifactService, fx.As(new(shared.ArtifactService)))),
	fx.Provide(fx.Annotate(NewTestPlanService, fx.As(new(shared.TestPlanService)))),
	fx.Provide(fx.Annotate(NewDefectService, fx.As(new(shared.DefectService)))),
	fx.Provide(fx.Annotate(NewDashboardService, fx.As(new(shared.DashboardService)))),
	fx.Provide(fx.Annotate(NewAuthService, fx.As(new(shared.AuthService)))),
)
