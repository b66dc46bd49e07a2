package executor

import (
	"context"
	"fmt"
	"strings"
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

// geniusWindow resolves an optional date range against the genius snapshots
func (e *executor) geniusWindow(ctx context.Context, start, end *time.Time) (analytics.Window, error) {
	window, err := analytics.ResolveWindow(ctx, e.dates(domain.TableGeniusUser), analytics.WindowHint{
		Start:        start,
		End:          end,
		LookbackDays: constants.DEFAULT_LIMIT_DAYS,
	})
	if err != nil {
		return analytics.Window{}, resolveError("resolve genius date range", err)
	}
	return window, nil
}

type levelCountry struct {
	level   string
	country string
}

func (e *executor) GetGeniusWeightTimeSeries(ctx context.Context, levels, countries []string, start, end *time.Time) ([]dto.GeniusWeightTimeSeries, error) {
	window, err := e.geniusWindow(ctx, start, end)
	if err != nil {
		return nil, err
	}
	if window.Empty {
		return []dto.GeniusWeightTimeSeries{}, nil
	}

	rows, err := e.store.GetGeniusWeightRows(ctx, store.SnapshotFilter{
		Levels:    levels,
		Countries: countries,
		Start:     &window.Start,
		End:       &window.End,
	})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get genius weights: %v", err))
	}

	groups := make(map[string]levelCountry)
	key := func(r store.GeniusWeightRow) string {
		lc := levelCountry{level: domain.DimensionOrUnknown(r.GeniusLevel), country: domain.DimensionOrUnknown(r.Country)}
		k := lc.level + "|" + lc.country
		groups[k] = lc
		return k
	}
	summed, err := analytics.SumByDate(ctx, rows, key,
		func(r store.GeniusWeightRow) time.Time { return r.RecordDate },
		func(r store.GeniusWeightRow) float64 { return deref(r.WeightFactor) },
	)
	if err != nil {
		return nil, resolveError("sum genius weights", err)
	}

	out := make([]dto.GeniusWeightTimeSeries, len(summed))
	for i, s := range summed {
		lc := groups[s.Entity]
		item := dto.GeniusWeightTimeSeries{
			GeniusLevel: lc.level,
			Country:     lc.country,
			Dates:       make([]string, len(s.Dates)),
			Weights:     make([]float64, len(s.Values)),
		}
		for j, d := range s.Dates {
			item.Dates[j] = analytics.FormatDate(d)
			item.Weights[j] = analytics.Round(s.Values[j], analytics.WeightPlaces)
		}
		out[i] = item
	}
	return out, nil
}

type geniusUserChange struct {
	user    string
	level   *string
	country *string
	delta   analytics.Delta
}

func (e *executor) GetGeniusUserWeightChanges(ctx context.Context, params GeniusUserWeightChangesParams) (*dto.Page[dto.GeniusUserWeightChange], error) {
	window, err := e.geniusWindow(ctx, params.Start, params.End)
	if err != nil {
		return nil, err
	}
	if window.Empty {
		return dto.EmptyPage[dto.GeniusUserWeightChange](params.Page, params.PageSize), nil
	}
	baselineStart := analytics.BaselineStart(window)

	rows, err := e.store.GetGeniusWeightRows(ctx, store.SnapshotFilter{
		Levels:    params.Levels,
		Countries: params.Countries,
		Start:     &baselineStart,
		End:       &window.End,
	})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get genius weights: %v", err))
	}

	series, err := analytics.GroupSeries(ctx, rows, func(r store.GeniusWeightRow) string { return r.User })
	if err != nil {
		return nil, resolveError("group genius users", err)
	}

	changes := make([]geniusUserChange, 0, len(series))
	for _, s := range series {
		first, last, ok := analytics.FirstLast(s.Rows, func(r store.GeniusWeightRow) float64 { return deref(r.WeightFactor) })
		if !ok {
			continue
		}
		delta, _ := analytics.ComputeDelta(last, &first, analytics.ComparableDelta)
		c := geniusUserChange{user: s.Entity, delta: delta}
		for _, r := range s.Rows {
			c.level = firstNonNil(c.level, r.GeniusLevel)
			c.country = firstNonNil(c.country, r.Country)
		}
		changes = append(changes, c)
	}

	ranked, err := analytics.Rank(ctx, changes, func(c geniusUserChange) float64 { return c.delta.Change }, types.ToSortOrder(params.Order))
	if err != nil {
		return nil, resolveError("rank genius users", err)
	}

	pageRows := analytics.Paginate(ranked, params.Page, params.PageSize)
	items := make([]dto.GeniusUserWeightChange, len(pageRows))
	for i, r := range pageRows {
		c := r.Item
		items[i] = dto.GeniusUserWeightChange{
			User:                c.user,
			GeniusLevel:         c.level,
			Country:             c.country,
			StartWeight:         analytics.Round(deref(c.delta.Baseline), analytics.WeightPlaces),
			EndWeight:           analytics.Round(c.delta.Current, analytics.WeightPlaces),
			WeightChange:        analytics.Round(c.delta.Change, analytics.WeightPlaces),
			WeightChangePercent: analytics.RoundPtr(c.delta.Percent, analytics.WeightPlaces),
			Rank:                r.Rank,
			Percentile:          r.Percentile,
		}
	}

	return dto.NewPage(items, len(ranked), params.Page, params.PageSize), nil
}

func (e *executor) GetGeniusLevelWeightChanges(ctx context.Context, days int) ([]dto.GeniusLevelWeightChange, error) {
	latest, err := e.latestDate(ctx, domain.TableConsultantUser, nil)
	if err != nil {
		return nil, err
	}
	if latest == nil {
		return []dto.GeniusLevelWeightChange{}, nil
	}
	start := analytics.AddDays(*latest, -days)

	levels := make([]string, len(domain.RankedGeniusLevels))
	for i, l := range domain.RankedGeniusLevels {
		levels[i] = string(l)
	}
	genius, err := e.store.GetGeniusUsers(ctx, store.SnapshotFilter{RecordDates: []time.Time{*latest}, Levels: levels})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get genius snapshots: %v", err))
	}
	if len(genius) == 0 {
		return []dto.GeniusLevelWeightChange{}, nil
	}

	levelOf := make(map[string]string, len(genius))
	var users []string
	for _, g := range genius {
		if _, ok := levelOf[g.User]; ok {
			continue
		}
		levelOf[g.User] = *g.GeniusLevel
		users = append(users, g.User)
	}

	consultants, err := e.store.GetConsultantUsers(ctx, store.SnapshotFilter{Users: users, RecordDates: []time.Time{*latest, start}})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get consultant snapshots: %v", err))
	}

	type tier struct {
		members    map[string]struct{}
		current    float64
		historical float64
	}
	tiers := make(map[string]*tier)
	for _, c := range consultants {
		level := levelOf[c.User]
		t, ok := tiers[level]
		if !ok {
			t = &tier{members: make(map[string]struct{})}
			tiers[level] = t
		}
		switch day := analytics.Day(c.RecordDate); {
		case day.Equal(*latest):
			t.members[c.User] = struct{}{}
			t.current += deref(c.WeightFactor)
		case day.Equal(start):
			t.historical += deref(c.WeightFactor)
		}
	}

	out := make([]dto.GeniusLevelWeightChange, 0, len(tiers))
	for _, level := range levels {
		t, ok := tiers[level]
		if !ok || len(t.members) == 0 {
			continue
		}
		delta, _ := analytics.ComputeDelta(t.current, &t.historical, analytics.TierDelta)
		out = append(out, dto.GeniusLevelWeightChange{
			GeniusLevel:         level,
			TotalUsers:          len(t.members),
			TotalWeight:         analytics.Round(t.current, analytics.WeightPlaces),
			WeightChange:        analytics.Round(delta.Change, analytics.WeightPlaces),
			WeightChangePercent: analytics.RoundPtr(delta.Percent, analytics.WeightPlaces),
		})
	}
	analytics.SortByKey(out, func(c dto.GeniusLevelWeightChange) float64 { return c.TotalWeight }, analytics.SortDesc)
	return out, nil
}

// mergedSortKey reads the sort value of one merged page column
type mergedSortKey struct {
	num func(dto.ConsultantMergedRow) *float64
	str func(dto.ConsultantMergedRow) *string
}

var mergedSortKeys = map[types.MergedSortField]mergedSortKey{
	types.MergedSortUser:                          {str: func(r dto.ConsultantMergedRow) *string { return &r.User }},
	types.MergedSortCountry:                       {str: func(r dto.ConsultantMergedRow) *string { return r.Country }},
	types.MergedSortUniversity:                    {str: func(r dto.ConsultantMergedRow) *string { return r.University }},
	types.MergedSortGeniusLevel:                   {str: func(r dto.ConsultantMergedRow) *string { return r.GeniusLevel }},
	types.MergedSortBestLevel:                     {str: func(r dto.ConsultantMergedRow) *string { return r.BestLevel }},
	types.MergedSortWeightFactor:                  {num: func(r dto.ConsultantMergedRow) *float64 { return r.WeightFactor }},
	types.MergedSortValueFactor:                   {num: func(r dto.ConsultantMergedRow) *float64 { return r.ValueFactor }},
	types.MergedSortDailyOsmosisRank:              {num: func(r dto.ConsultantMergedRow) *float64 { return r.DailyOsmosisRank }},
	types.MergedSortDataFieldsUsed:                {num: func(r dto.ConsultantMergedRow) *float64 { return intKey(r.DataFieldsUsed) }},
	types.MergedSortSubmissionsCount:              {num: func(r dto.ConsultantMergedRow) *float64 { return intKey(r.SubmissionsCount) }},
	types.MergedSortMeanProdCorrelation:           {num: func(r dto.ConsultantMergedRow) *float64 { return r.MeanProdCorrelation }},
	types.MergedSortMeanSelfCorrelation:           {num: func(r dto.ConsultantMergedRow) *float64 { return r.MeanSelfCorrelation }},
	types.MergedSortSuperAlphaSubmissionsCount:    {num: func(r dto.ConsultantMergedRow) *float64 { return intKey(r.SuperAlphaSubmissionsCount) }},
	types.MergedSortSuperAlphaMeanProdCorrelation: {num: func(r dto.ConsultantMergedRow) *float64 { return r.SuperAlphaMeanProdCorrelation }},
	types.MergedSortSuperAlphaMeanSelfCorrelation: {num: func(r dto.ConsultantMergedRow) *float64 { return r.SuperAlphaMeanSelfCorrelation }},
	types.MergedSortAlphaCount:                    {num: func(r dto.ConsultantMergedRow) *float64 { return intKey(r.AlphaCount) }},
	types.MergedSortPyramidCount:                  {num: func(r dto.ConsultantMergedRow) *float64 { return intKey(r.PyramidCount) }},
	types.MergedSortCombinedAlpha:                 {num: func(r dto.ConsultantMergedRow) *float64 { return r.CombinedAlphaPerformance }},
	types.MergedSortCombinedPowerPool:             {num: func(r dto.ConsultantMergedRow) *float64 { return r.CombinedPowerPoolPerformance }},
	types.MergedSortCombinedSelected:              {num: func(r dto.ConsultantMergedRow) *float64 { return r.CombinedSelectedPerformance }},
	types.MergedSortOperatorCount:                 {num: func(r dto.ConsultantMergedRow) *float64 { return intKey(r.OperatorCount) }},
	types.MergedSortOperatorAvg:                   {num: func(r dto.ConsultantMergedRow) *float64 { return r.OperatorAvg }},
	types.MergedSortFieldCount:                    {num: func(r dto.ConsultantMergedRow) *float64 { return intKey(r.FieldCount) }},
	types.MergedSortFieldAvg:                      {num: func(r dto.ConsultantMergedRow) *float64 { return r.FieldAvg }},
	types.MergedSortCommunityActivity:             {num: func(r dto.ConsultantMergedRow) *float64 { return r.CommunityActivity }},
	types.MergedSortMaxSimulationStreak:           {num: func(r dto.ConsultantMergedRow) *float64 { return intKey(r.MaxSimulationStreak) }},
	types.MergedSortRecordCoverage:                {num: func(r dto.ConsultantMergedRow) *float64 { return ptr(float64(r.RecordCoverage)) }},
}

func mergeRow(c schema.ConsultantUser, g *schema.GeniusUser) dto.ConsultantMergedRow {
	row := dto.ConsultantMergedRow{
		User:                          c.User,
		Country:                       c.Country,
		University:                    c.University,
		WeightFactor:                  c.WeightFactor,
		ValueFactor:                   c.ValueFactor,
		DailyOsmosisRank:              c.DailyOsmosisRank,
		DataFieldsUsed:                c.DataFieldsUsed,
		SubmissionsCount:              c.SubmissionsCount,
		MeanProdCorrelation:           c.MeanProdCorrelation,
		MeanSelfCorrelation:           c.MeanSelfCorrelation,
		SuperAlphaSubmissionsCount:    c.SuperAlphaSubmissionsCount,
		SuperAlphaMeanProdCorrelation: c.SuperAlphaMeanProdCorrelation,
		SuperAlphaMeanSelfCorrelation: c.SuperAlphaMeanSelfCorrelation,
	}
	if g == nil {
		return row
	}
	row.Country = firstNonNil(c.Country, g.Country)
	row.GeniusLevel = g.GeniusLevel
	row.BestLevel = g.BestLevel
	row.AlphaCount = g.AlphaCount
	row.PyramidCount = g.PyramidCount
	row.CombinedAlphaPerformance = g.CombinedAlphaPerformance
	row.CombinedPowerPoolPerformance = g.CombinedPowerPoolAlphaPerformance
	row.CombinedSelectedPerformance = g.CombinedSelectedAlphaPerformance
	row.OperatorCount = g.OperatorCount
	row.OperatorAvg = g.OperatorAvg
	row.FieldCount = g.FieldCount
	row.FieldAvg = g.FieldAvg
	row.CommunityActivity = g.CommunityActivity
	row.MaxSimulationStreak = g.MaxSimulationStreak
	return row
}

func (e *executor) GetConsultantMergedPage(ctx context.Context, params MergedPageParams) (*dto.ConsultantMergedPage, error) {
	sortBy := params.SortBy
	if sortBy == "" {
		sortBy = types.MergedSortUser
	}
	key, ok := mergedSortKeys[sortBy]
	if !ok {
		return nil, apierrors.NewBadRequestError(fmt.Sprintf("Invalid sort_by: %s", sortBy))
	}

	result := &dto.ConsultantMergedPage{
		Page:     params.Page,
		PageSize: params.PageSize,
		Items:    []dto.ConsultantMergedRow{},
	}

	date := params.RecordDate
	if date == nil {
		latest, err := e.latestDate(ctx, domain.TableConsultantUser, nil)
		if err != nil {
			return nil, err
		}
		if latest == nil {
			return result, nil
		}
		date = latest
	}
	result.RecordDate = analytics.FormatOptionalDate(date)

	var consultants []schema.ConsultantUser
	var genius []schema.GeniusUser
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := e.store.GetConsultantUsers(gctx, store.SnapshotFilter{RecordDates: []time.Time{*date}, Countries: params.Countries})
		consultants = rows
		return err
	})
	g.Go(func() error {
		rows, err := e.store.GetGeniusUsers(gctx, store.SnapshotFilter{RecordDates: []time.Time{*date}})
		genius = rows
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get merged snapshots: %v", err))
	}

	geniusByUser := make(map[string]*schema.GeniusUser, len(genius))
	for i := range genius {
		if _, ok := geniusByUser[genius[i].User]; !ok {
			geniusByUser[genius[i].User] = &genius[i]
		}
	}

	levels := toSet(params.Levels)
	keyword := strings.ToLower(strings.TrimSpace(params.UserKeyword))
	rows := make([]dto.ConsultantMergedRow, 0, len(consultants))
	users := make([]string, 0, len(consultants))
	for _, c := range consultants {
		if keyword != "" && !strings.Contains(strings.ToLower(c.User), keyword) {
			continue
		}
		gu := geniusByUser[c.User]
		if levels != nil && (gu == nil || !inSet(levels, gu.GeniusLevel)) {
			continue
		}
		rows = append(rows, mergeRow(c, gu))
		users = append(users, c.User)
	}

	coverage, err := e.store.CountSnapshotDatesByUser(ctx, users, *date)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to count snapshot dates: %v", err))
	}
	for i := range rows {
		rows[i].RecordCoverage = coverage[rows[i].User]
	}

	order := types.ToSortOrder(params.Order)
	if params.Order == "" {
		order = types.ToSortOrder(constants.DEFAULT_MERGED_ORDER)
	}
	if key.str != nil {
		analytics.SortByNullableString(rows, key.str, order)
	} else {
		analytics.SortByNullableKey(rows, key.num, order)
	}

	result.Total = len(rows)
	result.TotalPages = analytics.TotalPages(len(rows), params.PageSize)
	result.Items = analytics.Paginate(rows, params.Page, params.PageSize)
	return result, nil
}
