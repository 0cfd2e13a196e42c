// Package fs provides filing discovery and file-based output for
// extraction batches.
package fs

import (
	"path/filepath"
	"regexp"
	"strconv"

	secfilings "github.com/Guest400123064/parse-sec-filings"
)

// rawGlob locates raw filing documents inside a filings directory laid
// out as <symbol>/10-K/<filed-as-of-date>/__RAW__.htm.
const rawGlob = "*/10-K/*/__RAW__.htm"

// filedDate parses the filed-as-of-date path segment (yyyymmdd...).
var filedDate = regexp.MustCompile(`^(20\d\d)(\d\d)\d+$`)

// Scan walks a filings directory and returns the raw 10-K documents
// whose filing year is at least minYear, in path order. The symbol and
// filing time derive from the directory layout. Item 1A became a
// required disclosure with fiscal 2005, so callers typically pass 2006
// as the first filing year worth scanning.
func Scan(dir string, minYear int) ([]secfilings.Filing, error) {
	paths, err := filepath.Glob(filepath.Join(dir, rawGlob))
	if err != nil {
		return nil, secfilings.Errorf(secfilings.EINVALID, "scan %q: %v", dir, err)
	}

	var filings []secfilings.Filing
	for _, path := range paths {
		dateDir := filepath.Base(filepath.Dir(path))
		m := filedDate.FindStringSubmatch(dateDir)
		if m == nil {
			continue
		}

		year, _ := strconv.Atoi(m[1]) // digits-only by filedDate
		if minYear > 0 && year < minYear {
			continue
		}

		// <dir>/<symbol>/10-K/<date>/__RAW__.htm
		symbol := filepath.Base(filepath.Dir(filepath.Dir(filepath.Dir(path))))

		filings = append(filings, secfilings.Filing{
			Symbol:     symbol,
			FilingTime: m[1] + "-" + m[2],
			Path:       path,
		})
	}
	return filings, nil
}
