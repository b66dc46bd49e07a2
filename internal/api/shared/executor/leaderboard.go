package executor

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/feral-file/ff-leaderboard/internal/analytics"
	"github.com/feral-file/ff-leaderboard/internal/api/shared/constants"
	"github.com/feral-file/ff-leaderboard/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-leaderboard/internal/api/shared/errors"
	"github.com/feral-file/ff-leaderboard/internal/api/shared/types"
	"github.com/feral-file/ff-leaderboard/internal/domain"
	"github.com/feral-file/ff-leaderboard/internal/store"
	"github.com/feral-file/ff-leaderboard/internal/store/schema"
)

// countriesOrAll returns countries, or every country of table when none is given
func (e *executor) countriesOrAll(ctx context.Context, table domain.Table, countries []string) ([]string, error) {
	if len(countries) > 0 {
		return countries, nil
	}
	all, err := e.store.ListDistinctCountries(ctx, table)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list countries: %v", err))
	}
	return all, nil
}

// inCountryOrder orders series by the position of their entity in countries
func inCountryOrder[T any](series []analytics.Series[T], countries []string) []analytics.Series[T] {
	index := make(map[string]analytics.Series[T], len(series))
	for _, s := range series {
		index[s.Entity] = s
	}
	out := make([]analytics.Series[T], 0, len(series))
	for _, c := range countries {
		if s, ok := index[c]; ok {
			out = append(out, s)
			delete(index, c)
		}
	}
	return out
}

func (e *executor) GetCountryWeightTimeSeries(ctx context.Context, countries []string, limitDays int) ([]dto.CountryWeightTimeSeries, error) {
	countries, err := e.countriesOrAll(ctx, domain.TableConsultantCountry, countries)
	if err != nil {
		return nil, err
	}
	if len(countries) == 0 {
		return []dto.CountryWeightTimeSeries{}, nil
	}

	window, err := analytics.ResolveWindow(ctx, e.dates(domain.TableConsultantCountry), analytics.WindowHint{LookbackDays: limitDays})
	if err != nil {
		return nil, resolveError("resolve country weight window", err)
	}
	if window.Empty {
		return []dto.CountryWeightTimeSeries{}, nil
	}

	rows, err := e.store.GetConsultantCountries(ctx, store.SnapshotFilter{Countries: countries, Start: &window.Start, End: &window.End})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get country snapshots: %v", err))
	}

	series, err := analytics.GroupSeries(ctx, rows, func(r schema.ConsultantCountry) string { return r.Country })
	if err != nil {
		return nil, resolveError("group country weights", err)
	}

	out := make([]dto.CountryWeightTimeSeries, 0, len(series))
	for _, s := range inCountryOrder(series, countries) {
		item := dto.CountryWeightTimeSeries{
			Country: s.Entity,
			Dates:   make([]string, len(s.Rows)),
			Weights: make([]float64, len(s.Rows)),
		}
		for i, r := range s.Rows {
			item.Dates[i] = analytics.FormatDate(r.RecordDate)
			item.Weights[i] = analytics.Round(deref(r.WeightFactor), analytics.WeightPlaces)
		}
		out = append(out, item)
	}
	return out, nil
}

func (e *executor) GetCountrySubmissionTimeSeries(ctx context.Context, countries []string, limitDays int, start, end *time.Time) ([]dto.CountrySubmissionTimeSeries, error) {
	countries, err := e.countriesOrAll(ctx, domain.TableConsultantCountry, countries)
	if err != nil {
		return nil, err
	}
	if len(countries) == 0 {
		return []dto.CountrySubmissionTimeSeries{}, nil
	}

	window, err := analytics.ResolveWindow(ctx, e.dates(domain.TableConsultantCountry), analytics.WindowHint{
		Start:        start,
		End:          end,
		LookbackDays: limitDays,
	})
	if err != nil {
		return nil, resolveError("resolve country submission window", err)
	}
	if window.Empty {
		return []dto.CountrySubmissionTimeSeries{}, nil
	}

	rows, err := e.store.GetConsultantCountries(ctx, store.SnapshotFilter{Countries: countries, Start: &window.Start, End: &window.End})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get country snapshots: %v", err))
	}

	series, err := analytics.GroupSeries(ctx, rows, func(r schema.ConsultantCountry) string { return r.Country })
	if err != nil {
		return nil, resolveError("group country submissions", err)
	}

	out := make([]dto.CountrySubmissionTimeSeries, 0, len(series))
	for _, s := range inCountryOrder(series, countries) {
		item := dto.CountrySubmissionTimeSeries{
			Country:                    s.Entity,
			Dates:                      make([]string, len(s.Rows)),
			SubmissionsCount:           make([]int64, len(s.Rows)),
			SuperAlphaSubmissionsCount: make([]int64, len(s.Rows)),
		}
		for i, r := range s.Rows {
			item.Dates[i] = analytics.FormatDate(r.RecordDate)
			item.SubmissionsCount[i] = deref(r.SubmissionsCount)
			item.SuperAlphaSubmissionsCount[i] = deref(r.SuperAlphaSubmissionsCount)
		}
		item.SubmissionsChange = analytics.DayOverDay(item.SubmissionsCount)
		item.SuperAlphaSubmissionsChange = analytics.DayOverDay(item.SuperAlphaSubmissionsCount)
		out = append(out, item)
	}
	return out, nil
}

func (e *executor) GetGeniusCountryTimeSeries(ctx context.Context, countries []string, start, end *time.Time) ([]dto.GeniusCountryTimeSeries, error) {
	countries, err := e.countriesOrAll(ctx, domain.TableGeniusCountry, countries)
	if err != nil {
		return nil, err
	}
	if len(countries) == 0 {
		return []dto.GeniusCountryTimeSeries{}, nil
	}

	rows, err := e.store.GetGeniusCountries(ctx, store.SnapshotFilter{Countries: countries, Start: start, End: end})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get genius country snapshots: %v", err))
	}

	series, err := analytics.GroupSeries(ctx, rows, func(r schema.GeniusCountry) string { return r.Country })
	if err != nil {
		return nil, resolveError("group genius countries", err)
	}

	out := make([]dto.GeniusCountryTimeSeries, 0, len(series))
	for _, s := range inCountryOrder(series, countries) {
		dates := make([]string, len(s.Rows))
		counts := make([]int64, len(s.Rows))
		for i, r := range s.Rows {
			dates[i] = analytics.FormatDate(r.RecordDate)
			counts[i] = deref(r.AlphaCount)
		}
		out = append(out, dto.GeniusCountryTimeSeries{
			Country:          s.Entity,
			Dates:            dates,
			AlphaCountChange: analytics.DayOverDay(counts),
		})
	}
	return out, nil
}

func (e *executor) GetAvailableCountries(ctx context.Context) ([]string, error) {
	countries, err := e.store.ListDistinctCountries(ctx, domain.TableConsultantCountry)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list countries: %v", err))
	}
	if countries == nil {
		countries = []string{}
	}
	return countries, nil
}

func (e *executor) GetGeniusAvailableCountries(ctx context.Context) ([]string, error) {
	tables := []domain.Table{domain.TableGeniusUser, domain.TableGeniusCountry, domain.TableConsultantCountry}
	results := make([][]string, len(tables))

	g, gctx := errgroup.WithContext(ctx)
	for i, table := range tables {
		g.Go(func() error {
			countries, err := e.store.ListDistinctCountries(gctx, table)
			if err != nil {
				return err
			}
			results[i] = countries
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list countries: %v", err))
	}

	seen := make(map[string]struct{})
	union := []string{}
	for _, countries := range results {
		for _, c := range countries {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			union = append(union, c)
		}
	}
	sort.Strings(union)
	return union, nil
}

func (e *executor) GetGeniusAvailableLevels(ctx context.Context) ([]string, error) {
	levels, err := e.store.ListGeniusLevels(ctx)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list genius levels: %v", err))
	}
	if levels == nil {
		levels = []string{}
	}
	return levels, nil
}

// weightedCountriesOn retrieves the country snapshots of date that have a measured weight
func (e *executor) weightedCountriesOn(ctx context.Context, date time.Time) ([]schema.ConsultantCountry, error) {
	rows, err := e.store.GetConsultantCountries(ctx, store.SnapshotFilter{RecordDates: []time.Time{date}})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get country snapshots: %v", err))
	}
	weighted := make([]schema.ConsultantCountry, 0, len(rows))
	for _, r := range rows {
		if r.WeightFactor != nil {
			weighted = append(weighted, r)
		}
	}
	return weighted, nil
}

func (e *executor) GetCountryLeaderboard(ctx context.Context, limit, days int) ([]dto.CountryWeight, error) {
	cmp, err := analytics.ResolveComparison(ctx, e.dates(domain.TableConsultantCountry), analytics.ComparisonHint{
		Rule:         analytics.BaselineLookback,
		LookbackDays: days,
	})
	if err != nil {
		return nil, resolveError("resolve country leaderboard dates", err)
	}
	if cmp.Empty {
		return []dto.CountryWeight{}, nil
	}

	current, err := e.weightedCountriesOn(ctx, cmp.Current)
	if err != nil {
		return nil, err
	}
	historical, err := e.weightedCountriesOn(ctx, *cmp.Baseline)
	if err != nil {
		return nil, err
	}
	baseline := make(map[string]float64, len(historical))
	for _, r := range historical {
		baseline[r.Country] = *r.WeightFactor
	}

	analytics.SortByKey(current, func(r schema.ConsultantCountry) float64 { return *r.WeightFactor }, analytics.SortDesc)
	if limit >= 0 && len(current) > limit {
		current = current[:limit]
	}

	out := make([]dto.CountryWeight, len(current))
	for i, r := range current {
		var base *float64
		if w, ok := baseline[r.Country]; ok {
			base = &w
		}
		delta, _ := analytics.ComputeDelta(*r.WeightFactor, base, analytics.WeightDelta)
		out[i] = dto.CountryWeight{
			RecordDate:          analytics.FormatDate(cmp.Current),
			Country:             r.Country,
			WeightFactor:        analytics.RoundPtr(r.WeightFactor, analytics.WeightPlaces),
			User:                r.UserCount,
			ValueFactor:         analytics.RoundPtr(r.ValueFactor, analytics.RatioPlaces),
			SubmissionsCount:    r.SubmissionsCount,
			WeightChange:        ptr(analytics.Round(delta.Change, analytics.WeightPlaces)),
			WeightChangePercent: analytics.RoundPtr(delta.Percent, analytics.WeightPlaces),
		}
	}
	return out, nil
}

func (e *executor) GetUserLeaderboard(ctx context.Context, limit, days int, order types.Order) ([]dto.UserWeight, error) {
	cmp, err := analytics.ResolveComparison(ctx, e.dates(domain.TableConsultantUser), analytics.ComparisonHint{
		Rule:         analytics.BaselineLookback,
		LookbackDays: days,
	})
	if err != nil {
		return nil, resolveError("resolve user leaderboard dates", err)
	}
	if cmp.Empty {
		return []dto.UserWeight{}, nil
	}

	current, err := e.weightedUsersOn(ctx, cmp.Current, nil)
	if err != nil {
		return nil, err
	}
	historical, err := e.weightedUsersOn(ctx, *cmp.Baseline, nil)
	if err != nil {
		return nil, err
	}
	baseline := make(map[string]float64, len(historical))
	for _, u := range historical {
		baseline[u.User] = *u.WeightFactor
	}

	ranked := make([]userWeightChange, len(current))
	for i, u := range current {
		var base *float64
		if w, ok := baseline[u.User]; ok {
			base = &w
		}
		delta, _ := analytics.ComputeDelta(*u.WeightFactor, base, analytics.WeightDelta)
		ranked[i] = userWeightChange{user: u, delta: delta}
	}

	// Ranked by weight change, not by current weight
	analytics.SortByKey(ranked, func(r userWeightChange) float64 { return r.delta.Change }, types.ToSortOrder(order))
	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]dto.UserWeight, len(ranked))
	for i, r := range ranked {
		u := r.user
		out[i] = dto.UserWeight{
			RecordDate:          analytics.FormatDate(cmp.Current),
			User:                u.User,
			WeightFactor:        analytics.RoundPtr(u.WeightFactor, analytics.WeightPlaces),
			ValueFactor:         analytics.RoundPtr(u.ValueFactor, analytics.RatioPlaces),
			SubmissionsCount:    u.SubmissionsCount,
			University:          u.University,
			Country:             u.Country,
			WeightChange:        ptr(analytics.Round(r.delta.Change, analytics.WeightPlaces)),
			WeightChangePercent: analytics.RoundPtr(r.delta.Percent, analytics.WeightPlaces),
		}
	}
	return out, nil
}

type countryTotals struct {
	users  int64
	alpha  int64
	weight float64
}

func sumCountries(rows []schema.ConsultantCountry) countryTotals {
	var t countryTotals
	for _, r := range rows {
		t.users += deref(r.UserCount)
		t.alpha += deref(r.SubmissionsCount) + deref(r.SuperAlphaSubmissionsCount)
		t.weight += deref(r.WeightFactor)
	}
	return t
}

// changeSince is current minus historical, or current when there is nothing to compare against
func changeSince[N analytics.Number](current, historical N) N {
	if historical > 0 {
		return current - historical
	}
	return current
}

func (e *executor) GetSummaryStatistics(ctx context.Context, days int) (*dto.SummaryStatistics, error) {
	latest, err := e.latestDate(ctx, domain.TableConsultantCountry, nil)
	if err != nil {
		return nil, err
	}
	if latest == nil {
		return &dto.SummaryStatistics{}, nil
	}
	start := analytics.AddDays(*latest, -days)

	var current, historical []schema.ConsultantCountry
	counts := make([]int64, len(domain.SnapshotTables))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := e.store.GetConsultantCountries(gctx, store.SnapshotFilter{RecordDates: []time.Time{*latest}})
		current = rows
		return err
	})
	g.Go(func() error {
		rows, err := e.store.GetConsultantCountries(gctx, store.SnapshotFilter{RecordDates: []time.Time{start}})
		historical = rows
		return err
	})
	for i, table := range domain.SnapshotTables {
		g.Go(func() error {
			n, err := e.store.CountRows(gctx, table)
			counts[i] = n
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get summary statistics: %v", err))
	}

	cur, hist := sumCountries(current), sumCountries(historical)
	var records int64
	for _, n := range counts {
		records += n
	}

	return &dto.SummaryStatistics{
		TotalUsers:       cur.users,
		UserChange:       changeSince(cur.users, hist.users),
		TotalAlpha:       cur.alpha,
		AlphaChange:      changeSince(cur.alpha, hist.alpha),
		TotalWeight:      analytics.Round(cur.weight, analytics.WeightPlaces),
		WeightChange:     analytics.Round(changeSince(cur.weight, hist.weight), analytics.WeightPlaces),
		TotalRecords:     records,
		LatestRecordDate: analytics.FormatOptionalDate(latest),
	}, nil
}

// userWindow resolves the date range of a single user's series. Without dates it
// spans the default lookback ending at the user's latest snapshot.
func (e *executor) userWindow(ctx context.Context, user string, start, end *time.Time) (analytics.Window, error) {
	return analytics.ResolveWindow(ctx, e.userDates(domain.TableConsultantUser, user), analytics.WindowHint{
		Start:        start,
		End:          end,
		LookbackDays: constants.DEFAULT_LIMIT_DAYS,
	})
}

func (e *executor) userSeriesRows(ctx context.Context, user string, start, end *time.Time) ([]schema.ConsultantUser, error) {
	window, err := e.userWindow(ctx, user, start, end)
	if err != nil {
		return nil, resolveError("resolve user series window", err)
	}
	if window.Empty {
		return nil, nil
	}
	rows, err := e.store.GetConsultantUsers(ctx, store.SnapshotFilter{Users: []string{user}, Start: &window.Start, End: &window.End})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get user snapshots: %v", err))
	}
	return rows, nil
}

func (e *executor) GetUserWeightTimeSeries(ctx context.Context, user string, start, end *time.Time) (*dto.UserWeightTimeSeries, error) {
	user = domain.NormalizeWQID(user)
	series := &dto.UserWeightTimeSeries{User: user, Dates: []string{}, Weights: []float64{}}
	if user == "" {
		return series, nil
	}

	rows, err := e.userSeriesRows(ctx, user, start, end)
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		series.Dates = append(series.Dates, analytics.FormatDate(r.RecordDate))
		series.Weights = append(series.Weights, analytics.Round(deref(r.WeightFactor), analytics.WeightPlaces))
	}
	return series, nil
}

func (e *executor) GetUserDailyOsmosisTimeSeries(ctx context.Context, user string, start, end *time.Time) (*dto.UserDailyOsmosisTimeSeries, error) {
	user = domain.NormalizeWQID(user)
	series := &dto.UserDailyOsmosisTimeSeries{User: user, Dates: []string{}, DailyOsmosisRank: []*float64{}}
	if user == "" {
		return series, nil
	}

	rows, err := e.userSeriesRows(ctx, user, start, end)
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		series.Dates = append(series.Dates, analytics.FormatDate(r.RecordDate))
		series.DailyOsmosisRank = append(series.DailyOsmosisRank, r.DailyOsmosisRank)
	}
	return series, nil
}
