package main

// Screen a resume document from the command line:
//   go run ./cmd/screendemo -file resume.pdf
//   go run ./cmd/screendemo -file resume.docx -profile requirements.json
//
// Without a profile the tool prints the quality report; with one it
// prints the full screening result including the fit breakdown.

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"resume-screener/internal/analysis"
	"resume-screener/internal/candidates"
	"resume-screener/internal/companies"
	"resume-screener/internal/extract"
	"resume-screener/internal/screenings"
)

func main() {
	filePath := flag.String("file", "", "resume document to screen (pdf or docx)")
	profilePath := flag.String("profile", "", "optional requirement profile JSON file")
	flag.Parse()

	if strings.TrimSpace(*filePath) == "" {
		fmt.Fprintln(os.Stderr, "usage: screendemo -file resume.pdf [-profile requirements.json]")
		os.Exit(2)
	}

	data, err := os.ReadFile(*filePath)
	if err != nil {
		fatal("read file: %v", err)
	}

	format := strings.TrimPrefix(filepath.Ext(*filePath), ".")
	ctx := context.Background()
	svc := screenings.NewService(analysis.NewEngine(nil), companies.NewMemoryRepo(), candidates.NewMemoryRepo())

	var out any
	if strings.TrimSpace(*profilePath) == "" {
		report, err := svc.AnalyzeQuality(ctx, data, format)
		if err != nil {
			fatal("analyze: %v", err)
		}
		out = report
	} else {
		profile, err := loadProfile(*profilePath)
		if err != nil {
			fatal("load profile: %v", err)
		}
		text, err := extract.TextFromBytes(ctx, data, format, *filePath)
		if err != nil {
			fatal("extract: %v", err)
		}
		res, err := svc.Screen(ctx, text, &profile)
		if err != nil {
			fatal("screen: %v", err)
		}
		out = res
	}

	payload, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		fatal("encode result: %v", err)
	}
	fmt.Println(string(payload))
}

func loadProfile(path string) (analysis.Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return analysis.Profile{}, err
	}
	var profile analysis.Profile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return analysis.Profile{}, err
	}
	return profile, nil
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
