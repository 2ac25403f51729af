// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rootlockdefense/defectrix/dtos"
	"github.com/rootlockdefense/defectrix/shared"
)

type VaptReportController struct {
	vaptReportService shared.VaptReportService
	evidenceService   shared.EvidenceService
	artifactService   shared.ArtifactService
	testPlanService   shared.TestPlanService
}

func NewVaptReportController(
	vaptReportService shared.VaptReportService,
	evidenceService shared.EvidenceService,
	artifactService shared.ArtifactService,
	testPlanService shared.TestPlanService,
) *VaptReportController {
	return &VaptReportController{
		vaptReportService: vaptReportService,
		evidenceService:   evidenceService,
		artifactService:   artifactService,
		testPlanService:   testPlanService,
	}
}

// Initialize is idempotent on the (client, application) pair. Selected test
// plans only matter on first creation.
func (c *VaptReportController) Initialize(ctx shared.Context) error {
	var req dtos.GetOrCreateReportRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	testPlanIDs, err := parseUUIDs(req.SelectedTestPlanIDs)
	if err != nil {
		return err
	}

	actor, err := shared.GetActor(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "no session").WithInternal(err)
	}

	clientID := uuid.MustParse(req.ClientID)
	applicationID := uuid.MustParse(req.ApplicationID)

	report, existing, err := c.vaptReportService.GetOrCreate(clientID, applicationID, testPlanIDs, actor)
	if err != nil {
		return httpError(err)
	}

	testCases, err := c.vaptReportService.OrderedTestCases(report.ID)
	if err != nil {
		return httpError(err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"report":     report,
		"testCases":  testCases,
		"isExisting": existing,
	})
}

func (c *VaptReportController) Get(ctx shared.Context) error {
	reportID, err := parseIDParam(ctx, "reportID")
	if err != nil {
		return err
	}

	report, err := c.vaptReportService.Get(reportID)
	if err != nil {
		return httpError(err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"report":    report,
		"isExpired": c.vaptReportService.IsExpired(report, time.Now()),
	})
}

func (c *VaptReportController) TestCases(ctx shared.Context) error {
	reportID, err := parseIDParam(ctx, "reportID")
	if err != nil {
		return err
	}

	testCases, err := c.vaptReportService.OrderedTestCases(reportID)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusOK, testCases)
}

// Modify returns everything the edit view needs: the report, its test cases
// and the catalog with the already-selected template ids.
func (c *VaptReportController) Modify(ctx shared.Context) error {
	reportID, err := parseIDParam(ctx, "reportID")
	if err != nil {
		return err
	}

	report, err := c.vaptReportService.Get(reportID)
	if err != nil {
		return httpError(err)
	}

	testCases, err := c.vaptReportService.OrderedTestCases(reportID)
	if err != nil {
		return httpError(err)
	}

	testPlans, err := c.testPlanService.All()
	if err != nil {
		return httpError(err)
	}

	selected := make([]uuid.UUID, 0, len(testCases))
	for _, testCase := range testCases {
		selected = append(selected, testCase.TestPlanID)
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"report":              report,
		"testCases":           testCases,
		"availableTestPlans":  testPlans,
		"selectedTestPlanIds": selected,
		"isExpired":           c.vaptReportService.IsExpired(report, time.Now()),
	})
}

func (c *VaptReportController) AddTestCases(ctx shared.Context) error {
	reportID, err := parseIDParam(ctx, "reportID")
	if err != nil {
		return err
	}

	var req dtos.AddTestCasesRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	testPlanIDs, err := parseUUIDs(req.TestPlanIDs)
	if err != nil {
		return err
	}

	actor, err := shared.GetActor(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "no session").WithInternal(err)
	}

	added, testCases, err := c.vaptReportService.AddTestCases(reportID, testPlanIDs, actor)
	if err != nil {
		return httpError(err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"addedCount": added,
		"testCases":  testCases,
	})
}

func (c *VaptReportController) UpdateTestCase(ctx shared.Context) error {
	testCaseID, err := parseIDParam(ctx, "testCaseID")
	if err != nil {
		return err
	}

	var req dtos.UpdateTestCaseRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	actor, err := shared.GetActor(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "no session").WithInternal(err)
	}

	testCase, err := c.vaptReportService.UpdateTestCase(testCaseID, req, actor)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusOK, testCase)
}

func (c *VaptReportController) UpdateConfig(ctx shared.Context) error {
	reportID, err := parseIDParam(ctx, "reportID")
	if err != nil {
		return err
	}

	var req dtos.UpdateReportConfigRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unable to process request").WithInternal(err)
	}

	report, err := c.vaptReportService.UpdateConfig(reportID, req)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusOK, report)
}

func (c *VaptReportController) Generate(ctx shared.Context) error {
	reportID, err := parseIDParam(ctx, "reportID")
	if err != nil {
		return err
	}

	report, err := c.vaptReportService.Generate(reportID)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusOK, report)
}

// Download regenerates the requested format on every call.
func (c *VaptReportController) Download(ctx shared.Context) error {
	reportID, err := parseIDParam(ctx, "reportID")
	if err != nil {
		return err
	}

	format := shared.SanitizeParam(ctx.Param("format"))
	fileName := fmt.Sprintf("vapt-report-%s.%s", reportID, format)

	switch format {
	case "html":
		content, err := c.artifactService.RenderHTML(reportID)
		if err != nil {
			return httpError(err)
		}
		ctx.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+fileName)
		return ctx.Blob(http.StatusOK, echo.MIMETextHTMLCharsetUTF8, content)
	case "docx":
		content, err := c.artifactService.RenderDocx(reportID)
		if err != nil {
			return httpError(err)
		}
		ctx.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+fileName)
		return ctx.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", content)
	case "pdf":
		content, err := c.artifactService.RenderPdf(reportID)
		if err != nil {
			return httpError(err)
		}
		ctx.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+fileName)
		return ctx.Blob(http.StatusOK, "application/pdf", content)
	}
	return echo.NewHTTPError(http.StatusBadRequest, "unsupported format")
}

// HTML serves the report inline for in-browser preview.
func (c *VaptReportController) HTML(ctx shared.Context) error {
	reportID, err := parseIDParam(ctx, "reportID")
	if err != nil {
		return err
	}

	content, err := c.artifactService.RenderHTML(reportID)
	if err != nil {
		return httpError(err)
	}
	return ctx.HTMLBlob(http.StatusOK, content)
}

func (c *VaptReportController) AddPoc(ctx shared.Context) error {
	testCaseID, err := parseIDParam(ctx, "testCaseID")
	if err != nil {
		return err
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing file").WithInternal(err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unable to read file").WithInternal(err)
	}
	defer file.Close()

	actor, err := shared.GetActor(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "no session").WithInternal(err)
	}

	upload := dtos.PocUpload{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Size:        fileHeader.Size,
		Description: ctx.FormValue("description"),
		Content:     file,
	}

	poc, err := c.evidenceService.AddPoc(testCaseID, upload, actor)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusCreated, poc)
}

func (c *VaptReportController) GetPoc(ctx shared.Context) error {
	pocID, err := parseIDParam(ctx, "pocID")
	if err != nil {
		return err
	}

	poc, err := c.evidenceService.GetPoc(pocID)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusOK, poc)
}

func (c *VaptReportController) UpdatePoc(ctx shared.Context) error {
	pocID, err := parseIDParam(ctx, "pocID")
	if err != nil {
		return err
	}

	var req dtos.UpdatePocRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unable to process request").WithInternal(err)
	}

	poc, err := c.evidenceService.UpdatePocDescription(pocID, req.Description)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusOK, poc)
}

func (c *VaptReportController) DeletePoc(ctx shared.Context) error {
	pocID, err := parseIDParam(ctx, "pocID")
	if err != nil {
		return err
	}

	if err := c.evidenceService.DeletePoc(pocID); err != nil {
		return httpError(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
