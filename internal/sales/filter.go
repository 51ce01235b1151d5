package sales

import (
	"strconv"
	"strings"

	"github.com/iwvelando/marui-portal/pkg/constants"
	"github.com/iwvelando/marui-portal/pkg/datetime"
)

// Filter narrows the sales lists. Zero values and "All" match everything.
type Filter struct {
	Search    string
	Month     datetime.Month
	Year      int
	BrandCode string
	Channel   string
}

func all(v string) bool {
	return v == "" || v == constants.FilterAll
}

// Match reports whether a record with key k and brand name passes the filter.
// Search is a case-insensitive substring match over the brand, channel,
// month and year.
func (f Filter) Match(k Key, brand string) bool {
	if f.Month.Valid() && k.Month != f.Month {
		return false
	}
	if f.Year != 0 && k.Year != f.Year {
		return false
	}
	if !all(f.BrandCode) && k.BrandCode != f.BrandCode {
		return false
	}
	if !all(f.Channel) && k.Channel != f.Channel {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(f.Search))
	if q == "" {
		return true
	}
	month := ""
	if k.Month.Valid() {
		month = k.Month.String()
	}
	for _, v := range []string{brand, k.BrandCode, k.Channel, month, strconv.Itoa(k.Year)} {
		if strings.Contains(strings.ToLower(v), q) {
			return true
		}
	}
	return false
}
