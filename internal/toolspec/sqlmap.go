package toolspec

import (
	"regexp"
	"strconv"
	"strings"
)

// Sqlmap wraps sqlmap SQL injection testing/exploitation. Grounded on
// _examples/original_source/src/voidwave/tools/sqlmap.py.
type Sqlmap struct{}

func NewSqlmap() *Sqlmap { return &Sqlmap{} }

func (s *Sqlmap) Name() string { return "sqlmap" }

func (s *Sqlmap) BuildCommand(target string, options Options) ([]string, error) {
	cmd := []string{"-u", target, "--batch"}
	cmd = append(cmd, "--level", strconv.Itoa(optInt(options, "level", 1)))
	cmd = append(cmd, "--risk", strconv.Itoa(optInt(options, "risk", 1)))
	cmd = append(cmd, "--threads", strconv.Itoa(optInt(options, "threads", 1)))

	if optBool(options, "dbs", false) {
		cmd = append(cmd, "--dbs")
	}
	if optBool(options, "tables", false) {
		cmd = append(cmd, "--tables")
	}
	if optBool(options, "forms", false) {
		cmd = append(cmd, "--forms")
	}
	if crawl := optInt(options, "crawl", 0); crawl > 0 {
		cmd = append(cmd, "--crawl", strconv.Itoa(crawl))
	}

	return cmd, nil
}

var (
	sqlmapInjectionRe = regexp.MustCompile(`Parameter:\s+(\S+)\s+\(([^)]+)\)`)
	sqlmapDBMSRe      = regexp.MustCompile(`back-end DBMS:\s+(.+)`)
	sqlmapDBListRe    = regexp.MustCompile(`^\[\*]\s+(\S+)$`)
)

// ParseOutput scrapes sqlmap's text report for the fields the builtin sqli_attack
// chain's conditions read: "vulnerable" and "databases".
func (s *Sqlmap) ParseOutput(raw string) Output {
	var injectionPoints []map[string]any
	vulnerable := false
	var dbms string
	var databases []string
	inDBList := false

	for _, line := range strings.Split(raw, "\n") {
		if m := sqlmapInjectionRe.FindStringSubmatch(line); m != nil {
			injectionPoints = append(injectionPoints, map[string]any{"parameter": m[1], "type": m[2]})
			vulnerable = true
		}
		if m := sqlmapDBMSRe.FindStringSubmatch(line); m != nil {
			dbms = strings.TrimSpace(m[1])
		}
		if strings.Contains(line, "available databases") {
			inDBList = true
			continue
		}
		if inDBList {
			if m := sqlmapDBListRe.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
				databases = append(databases, m[1])
				continue
			}
			inDBList = false
		}
	}

	dbs := make([]any, len(databases))
	for i, d := range databases {
		dbs[i] = d
	}

	return Output{
		"vulnerable":       vulnerable,
		"injection_points": injectionPoints,
		"dbms":             dbms,
		"databases":        dbs,
		"raw_output":       raw,
	}
}
