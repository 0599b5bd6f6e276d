package importer

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/errgroup"

	"github.com/voltplan/loadcalc/internal/domain"
	"github.com/voltplan/loadcalc/internal/pkg/logger"
	"github.com/voltplan/loadcalc/internal/pkg/store"
)

// Service backfills factor reference data from published HTML tables, e.g. a
// utility's load-schedule page. Each <table class="load-factors"> row becomes
// one load-factor upsert.
type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// BackfillLoadFactors fetches the page and upserts every parsed factor row.
func (s *Service) BackfillLoadFactors(ctx context.Context, mainURL string) ([]*domain.LoadFactor, error) {
	doc, err := s.fetchDocument(ctx, mainURL)
	if err != nil {
		return nil, err
	}

	parsed := make([]*domain.LoadFactor, 0, 64)
	parsedMx := sync.Mutex{}
	eg, egCtx := errgroup.WithContext(ctx)

	doc.Find("table.load-factors").Each(func(i int, table *goquery.Selection) {
		category := strings.TrimSpace(table.Find("caption").Text())

		eg.Go(func() error {
			factors, err := parseFactorTable(table, category)
			if err != nil {
				return fmt.Errorf("parseFactorTable, category-%s: %w", category, err)
			}

			if err := s.store.UpsertLoadFactors(egCtx, factors); err != nil {
				return fmt.Errorf("UpsertLoadFactors, category-%s: %w", category, err)
			}

			logger.Infof(egCtx, "backfilled %d load factors for %s", len(factors), category)

			parsedMx.Lock()
			defer parsedMx.Unlock()
			parsed = append(parsed, factors...)
			return nil
		})
	})

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("err in goroutine: %w", err)
	}

	return parsed, nil
}

func (s *Service) fetchDocument(ctx context.Context, url string) (doc *goquery.Document, err error) {
	var resp *http.Response
	err = backoff.Retry(
		func() error {
			var httpErr error

			resp, httpErr = http.Get(url)
			if httpErr != nil {
				return fmt.Errorf("http.Get: %w", httpErr)
			}
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("status code error: %d %s", resp.StatusCode, resp.Status)
			}

			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(100*time.Millisecond), 5),
			ctx,
		),
	)
	if err != nil {
		return nil, err
	}

	defer func() {
		closeErr := resp.Body.Close()
		if closeErr != nil {
			err = fmt.Errorf("failed to close reader: %w", closeErr)
		}
	}()

	doc, parseErr := goquery.NewDocumentFromReader(resp.Body)
	if parseErr != nil {
		return nil, fmt.Errorf("goquery.NewDocumentFromReader: %w", parseErr)
	}

	return doc, nil
}

// parseFactorTable reads rows of the form
// sub_category | description | watt_per_sqm | mdf | edf | fdf | notes.
func parseFactorTable(table *goquery.Selection, category string) ([]*domain.LoadFactor, error) {
	var err error
	factors := make([]*domain.LoadFactor, 0, 16)

	table.Find("tbody tr").EachWithBreak(func(_ int, tr *goquery.Selection) bool {
		tds := tr.Find("td")
		if tds.Length() < 6 {
			// skip header and separator rows
			return true
		}

		f := &domain.LoadFactor{
			Category:    category,
			SubCategory: strings.TrimSpace(tds.Eq(0).Text()),
			Description: strings.TrimSpace(tds.Eq(1).Text()),
			Notes:       strings.TrimSpace(tds.Eq(6).Text()),
		}
		if f.Description == "" {
			return true
		}

		if f.WattPerSqm, err = parseOptionalFloat(tds.Eq(2).Text()); err != nil {
			return false
		}
		if f.MDF, err = parseOptionalFloat(tds.Eq(3).Text()); err != nil {
			return false
		}
		if f.EDF, err = parseOptionalFloat(tds.Eq(4).Text()); err != nil {
			return false
		}
		if f.FDF, err = parseOptionalFloat(tds.Eq(5).Text()); err != nil {
			return false
		}

		factors = append(factors, f)
		return true
	})
	if err != nil {
		return nil, err
	}

	return factors, nil
}

func parseOptionalFloat(raw string) (*float64, error) {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	if raw == "" || raw == "-" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", raw, err)
	}

	return &val, nil
}
