package export_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"a11yscanner/internal/export"
	"a11yscanner/internal/settings"
	mocksettings "a11yscanner/internal/settings/mock"
	"a11yscanner/pkg/domain"
	"a11yscanner/pkg/logger"
	"a11yscanner/pkg/serrors"
	mockstorage "a11yscanner/pkg/storage/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC) //nolint: gochecknoglobals

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

type fixture struct {
	settings *mocksettings.MockService
	storage  *mockstorage.MockAllStorage
	exporter export.Exporter
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		settings: mocksettings.NewMockService(ctrl),
		storage:  mockstorage.NewMockAllStorage(ctrl),
	}
	f.exporter = export.New(f.settings, f.storage, export.Options{
		SiteURL: "https://example.com",
		Version: "1.2.3",
		Now:     func() time.Time { return testNow },
	})

	return f
}

func findings() []domain.Finding {
	resolved := testNow.Add(time.Hour)

	return []domain.Finding{
		{
			ID: 2, ContentID: 10, ContentTitle: `Hello, "world"`, ScanType: domain.ScanTypeFull,
			IssueCode: domain.IssueImageNoAlt, Severity: domain.SeverityError,
			IssueData: domain.IssueData{"wcag": "1.1.1"}, ScannedAt: testNow,
		},
		{
			ID: 1, ContentID: 11, ContentTitle: "Plain", ScanType: domain.ScanTypeLinks,
			IssueCode: domain.IssueLinkGenericText, Severity: domain.SeverityWarning,
			ScannedAt: testNow, ResolvedAt: &resolved,
		},
	}
}

func TestParseFormat(t *testing.T) {
	for _, raw := range []string{"json", "csv", "pdf"} {
		f, err := export.ParseFormat(raw)
		require.NoError(t, err)
		require.Equal(t, export.Format(raw), f)
	}

	_, err := export.ParseFormat("xml")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestExport_CSV(t *testing.T) {
	f := newFixture(t)
	f.storage.EXPECT().AllFindings(gomock.Any()).Return(findings(), nil)

	doc, err := f.exporter.Export(context.Background(), export.FormatCSV)
	require.NoError(t, err)
	require.Equal(t, "text/csv", doc.ContentType)
	require.Equal(t, "accessibility-report-2025-03-14.csv", doc.Filename)

	lines := strings.Split(strings.TrimRight(string(doc.Body), "\n"), "\n")
	require.Equal(t, []string{
		"ID,Post ID,Post Title,Scan Type,Issue Code,Severity,Scanned At,Resolved At",
		`2,10,"Hello, ""world""",full,img_no_alt,error,2025-03-14 09:30:00,`,
		"1,11,Plain,links," + string(domain.IssueLinkGenericText) + ",warning,2025-03-14 09:30:00,2025-03-14 10:30:00",
	}, lines)
}

func TestExport_CSVEmpty(t *testing.T) {
	f := newFixture(t)
	f.storage.EXPECT().AllFindings(gomock.Any()).Return(nil, nil)

	doc, err := f.exporter.Export(context.Background(), export.FormatCSV)
	require.NoError(t, err)
	require.Equal(t, strings.Join(export.CSVHeader, ",")+"\n", string(doc.Body))
}

func TestExport_JSON(t *testing.T) {
	f := newFixture(t)
	f.storage.EXPECT().AllFindings(gomock.Any()).Return(findings(), nil)
	f.settings.EXPECT().Get(gomock.Any()).Return(settings.Defaults(), nil)

	doc, err := f.exporter.Export(context.Background(), export.FormatJSON)
	require.NoError(t, err)
	require.Equal(t, "application/json", doc.ContentType)
	require.Equal(t, "accessibility-report-2025-03-14.json", doc.Filename)

	var body struct {
		GeneratedAt   string         `json:"generated_at"`
		SiteURL       string         `json:"site_url"`
		PluginVersion string         `json:"plugin_version"`
		Settings      map[string]any `json:"settings"`
		Issues        []struct {
			ID        int64          `json:"id"`
			IssueCode string         `json:"issueCode"`
			IssueData map[string]any `json:"issueData"`
		} `json:"issues"`
	}
	require.NoError(t, json.Unmarshal(doc.Body, &body))
	require.Equal(t, "2025-03-14T09:30:00Z", body.GeneratedAt)
	require.Equal(t, "https://example.com", body.SiteURL)
	require.Equal(t, "1.2.3", body.PluginVersion)
	require.Contains(t, body.Settings, "modules")
	require.Len(t, body.Issues, 2)
	require.Equal(t, int64(2), body.Issues[0].ID)
	require.Equal(t, "1.1.1", body.Issues[0].IssueData["wcag"])
}

func TestExport_Errors(t *testing.T) {
	t.Run("pdf", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.exporter.Export(context.Background(), export.FormatPDF)
		require.ErrorIs(t, err, serrors.ErrNotImplemented)
	})

	t.Run("unknown format", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.exporter.Export(context.Background(), export.Format("xml"))
		require.ErrorIs(t, err, serrors.ErrBadRequest)
		require.False(t, errors.Is(err, serrors.ErrNotImplemented))
	})

	t.Run("storage", func(t *testing.T) {
		f := newFixture(t)
		f.storage.EXPECT().AllFindings(gomock.Any()).Return(nil, errors.New("db down"))

		_, err := f.exporter.Export(context.Background(), export.FormatJSON)
		require.ErrorIs(t, err, serrors.ErrStorage)
	})
}
