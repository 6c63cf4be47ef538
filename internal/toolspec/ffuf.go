package toolspec

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Ffuf wraps the ffuf web fuzzer. Grounded on
// _examples/original_source/src/voidwave/tools/ffuf.py.
type Ffuf struct{}

func NewFfuf() *Ffuf { return &Ffuf{} }

func (f *Ffuf) Name() string { return "ffuf" }

// OptionSchema keeps the thread count positive and the rate non-negative;
// match/filter status lists are accepted as any string.
func (f *Ffuf) OptionSchema() string {
	return `{
		"type": "object",
		"properties": {
			"wordlist": {"type": "string"},
			"threads": {"type": "integer", "minimum": 1, "maximum": 500},
			"timeout": {"type": "integer", "minimum": 1},
			"rate": {"type": "integer", "minimum": 0},
			"requests_per_second": {"type": "number", "minimum": 0},
			"match_status": {"type": "string"},
			"filter_status": {"type": "string"},
			"recursion": {"type": "boolean"},
			"recursion_depth": {"type": "integer", "minimum": 1}
		}
	}`
}

func (f *Ffuf) BuildCommand(target string, options Options) ([]string, error) {
	url := target
	if !strings.Contains(target, "FUZZ") {
		url = strings.TrimRight(target, "/") + "/FUZZ"
	}

	cmd := []string{"-u", url}
	cmd = append(cmd, "-w", optString(options, "wordlist", "/usr/share/seclists/Discovery/Web-Content/common.txt"))
	cmd = append(cmd, "-of", "json", "-o", "-")
	cmd = append(cmd, "-t", strconv.Itoa(optInt(options, "threads", 40)))
	cmd = append(cmd, "-timeout", strconv.Itoa(optInt(options, "timeout", 10)))

	if rate := optInt(options, "rate", 0); rate > 0 {
		cmd = append(cmd, "-rate", strconv.Itoa(rate))
	}
	if ms := optString(options, "match_status", "200,204,301,302,307,401,403,405"); ms != "" {
		cmd = append(cmd, "-mc", ms)
	}
	if fs := optString(options, "filter_status", ""); fs != "" {
		cmd = append(cmd, "-fc", fs)
	}
	if recursion := optBool(options, "recursion", false); recursion {
		cmd = append(cmd, "-recursion", "-recursion-depth", strconv.Itoa(optInt(options, "recursion_depth", 1)))
	}

	return cmd, nil
}

type ffufResult struct {
	Results []struct {
		URL            string `json:"url"`
		Status         int    `json:"status"`
		Length         int    `json:"length"`
		Words          int    `json:"words"`
		Lines          int    `json:"lines"`
		ContentType    string `json:"content-type"`
		Input          map[string]string `json:"input"`
	} `json:"results"`
}

func (f *Ffuf) ParseOutput(raw string) Output {
	var parsed ffufResult
	if err := json.Unmarshal([]byte(raw), &parsed); err == nil {
		results := make([]map[string]any, 0, len(parsed.Results))
		for _, r := range parsed.Results {
			results = append(results, map[string]any{
				"url": r.URL, "status": r.Status, "length": r.Length,
				"words": r.Words, "lines": r.Lines, "content_type": r.ContentType,
			})
		}
		return Output{"results": results, "count": len(results)}
	}
	return Output{"raw_output": raw, "results": []map[string]any{}}
}
