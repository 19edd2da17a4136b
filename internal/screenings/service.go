package screenings

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"resume-screener/internal/analysis"
	"resume-screener/internal/candidates"
	"resume-screener/internal/companies"
	"resume-screener/internal/extract"
	"resume-screener/internal/shared/metrics"
	"resume-screener/internal/shared/telemetry"
)

// bulkDefaultSize caps how many stored candidates an id-less bulk
// screening pulls in, newest first.
const bulkDefaultSize = 100

// Service orchestrates scoring over stored companies and candidates.
type Service struct {
	Engine     *analysis.Engine
	Companies  companies.Repo
	Candidates candidates.Repo
}

// NewService constructs a Service.
func NewService(engine *analysis.Engine, companiesRepo companies.Repo, candidatesRepo candidates.Repo) *Service {
	return &Service{Engine: engine, Companies: companiesRepo, Candidates: candidatesRepo}
}

// Screen evaluates resume text, against a requirement profile when one
// is given. A nil profile yields a quality-only result with a zero fit.
func (s *Service) Screen(ctx context.Context, resumeText string, profile *analysis.Profile) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if strings.TrimSpace(resumeText) == "" {
		return Result{}, ErrEmptyResume
	}

	metrics.IncScreeningStarted()
	startMs := metrics.NowMillis()

	ent := s.Engine.Extract(resumeText)

	var fit *analysis.FitResult
	if profile != nil {
		res, err := s.Engine.ScoreFit(resumeText, *profile)
		if err != nil {
			metrics.IncScreeningFailed()
			return Result{}, err
		}
		fit = &res
	}

	report := s.Engine.BuildReport(ent, fit)

	metrics.IncScreeningCompleted()
	metrics.ObserveScreeningDurationMs(metrics.NowMillis() - startMs)

	out := Result{Entities: ent, Report: report}
	if fit != nil {
		out.Fit = *fit
	} else {
		out.Fit = emptyFit()
	}
	return out, nil
}

// AnalyzeFit scores resume text against a requirement profile. The same
// inputs always produce the same result.
func (s *Service) AnalyzeFit(ctx context.Context, resumeText string, profile analysis.Profile) (analysis.FitResult, error) {
	if err := ctx.Err(); err != nil {
		return analysis.FitResult{}, err
	}
	if strings.TrimSpace(resumeText) == "" {
		return analysis.FitResult{}, ErrEmptyResume
	}
	return s.Engine.ScoreFit(resumeText, profile)
}

// AnalyzeQuality extracts text from an in-memory document and builds
// the requirement-independent quality report. Extraction failures
// surface as-is; no partial report is ever returned.
func (s *Service) AnalyzeQuality(ctx context.Context, data []byte, format string) (analysis.ComprehensiveReport, error) {
	text, err := extract.TextFromBytes(ctx, data, format, "")
	if err != nil {
		return analysis.ComprehensiveReport{}, err
	}
	res, err := s.Screen(ctx, text, nil)
	if err != nil {
		return analysis.ComprehensiveReport{}, err
	}
	return res.Report, nil
}

// ScreenPair screens a stored candidate against a stored company.
func (s *Service) ScreenPair(ctx context.Context, companyID, candidateID string) (PairResult, error) {
	company, err := s.Companies.GetByID(ctx, strings.TrimSpace(companyID))
	if err != nil {
		return PairResult{}, err
	}
	candidate, err := s.Candidates.GetByID(ctx, strings.TrimSpace(candidateID))
	if err != nil {
		return PairResult{}, err
	}

	res, err := s.Screen(ctx, candidate.ResumeText, &company.Requirements)
	if err != nil {
		return PairResult{}, err
	}
	return PairResult{
		CompanyID:     company.ID,
		CandidateID:   candidate.ID,
		CandidateName: candidate.Name,
		Result:        res,
	}, nil
}

// ScreenBulk screens stored candidates against one requirement profile
// and returns entries sorted by fit score descending, candidate id
// ascending on ties. Without explicit ids the newest bulkDefaultSize
// candidates are screened. A missing candidate fails the whole batch.
func (s *Service) ScreenBulk(ctx context.Context, profile analysis.Profile, candidateIDs []string) (BulkResult, error) {
	if err := profile.Validate(); err != nil {
		return BulkResult{}, err
	}

	pool, err := s.resolveCandidates(ctx, candidateIDs)
	if err != nil {
		return BulkResult{}, err
	}

	startMs := metrics.NowMillis()
	entries := make([]BulkEntry, 0, len(pool))
	for _, cand := range pool {
		if err := ctx.Err(); err != nil {
			return BulkResult{}, err
		}
		metrics.IncScreeningStarted()
		fit, err := s.Engine.ScoreFit(cand.ResumeText, profile)
		if err != nil {
			metrics.IncScreeningFailed()
			return BulkResult{}, fmt.Errorf("candidate %s: %w", cand.ID, err)
		}
		metrics.IncScreeningCompleted()
		entries = append(entries, BulkEntry{
			CandidateID:   cand.ID,
			CandidateName: cand.Name,
			Fit:           fit,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Fit.Score != entries[j].Fit.Score {
			return entries[i].Fit.Score > entries[j].Fit.Score
		}
		return entries[i].CandidateID < entries[j].CandidateID
	})

	telemetry.Info("screenings.bulk", map[string]any{
		"candidates":  len(entries),
		"duration_ms": metrics.NowMillis() - startMs,
	})
	return BulkResult{Results: entries, Count: len(entries)}, nil
}

// resolveCandidates loads the explicit ids in order, dropping blanks
// and duplicates, or falls back to the newest stored candidates.
func (s *Service) resolveCandidates(ctx context.Context, ids []string) ([]candidates.Candidate, error) {
	if len(ids) == 0 {
		return s.Candidates.List(ctx, bulkDefaultSize, 0)
	}

	seen := make(map[string]struct{}, len(ids))
	pool := make([]candidates.Candidate, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		cand, err := s.Candidates.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("candidate %s: %w", id, err)
		}
		pool = append(pool, cand)
	}
	return pool, nil
}

// emptyFit is the placeholder fit for quality-only screenings.
func emptyFit() analysis.FitResult {
	return analysis.FitResult{
		Breakdown: analysis.FitBreakdown{
			MatchedSkills: []string{},
			MissingSkills: []string{},
		},
	}
}
