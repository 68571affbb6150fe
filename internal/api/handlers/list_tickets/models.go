package list_tickets

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/DriveTail-Dashboard/internal/domain"
)

// filterKeys параметры, которые применяются локально и не уходят на бэкенд
var filterKeys = []string{"search", "status", "importance", "urgency", "service", "user", "dateFrom", "dateTo"}

// ParseFilter разбирает фильтр тикетов из query.
// Списки принимаются через запятую или повторением параметра.
// Возвращает остаток query для бэкенда.
func ParseFilter(query url.Values) (domain.TicketFilter, url.Values, error) {
	var (
		filter domain.TicketFilter
		err    error
	)

	filter.Search = strings.TrimSpace(query.Get("search"))

	if filter.Status, err = parseIDs(query, "status"); err != nil {
		return filter, nil, err
	}
	if filter.Importance, err = parseIDs(query, "importance"); err != nil {
		return filter, nil, err
	}
	if filter.Urgency, err = parseIDs(query, "urgency"); err != nil {
		return filter, nil, err
	}
	if filter.Service, err = parseIDs(query, "service"); err != nil {
		return filter, nil, err
	}
	filter.User = splitValues(query["user"])

	if raw := query.Get("dateFrom"); raw != "" {
		from, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return filter, nil, fmt.Errorf("dateFrom %q: %w", raw, err)
		}
		filter.DateFrom = &from
	}
	if raw := query.Get("dateTo"); raw != "" {
		to, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return filter, nil, fmt.Errorf("dateTo %q: %w", raw, err)
		}
		// конец дня включительно
		end := to.Add(24*time.Hour - time.Nanosecond)
		filter.DateTo = &end
	}

	rest := url.Values{}
	for k, v := range query {
		rest[k] = v
	}
	for _, k := range filterKeys {
		rest.Del(k)
	}

	return filter, rest, nil
}

func parseIDs(query url.Values, key string) ([]int64, error) {
	values := splitValues(query[key])
	if len(values) == 0 {
		return nil, nil
	}
	ids := make([]int64, 0, len(values))
	for _, v := range values {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s %q: %w", key, v, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func splitValues(raw []string) []string {
	var out []string
	for _, item := range raw {
		for _, v := range strings.Split(item, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}
