package executor

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/feral-file/ff-leaderboard/internal/analytics"
	"github.com/feral-file/ff-leaderboard/internal/api/shared/constants"
	"github.com/feral-file/ff-leaderboard/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-leaderboard/internal/api/shared/errors"
	"github.com/feral-file/ff-leaderboard/internal/api/shared/types"
	"github.com/feral-file/ff-leaderboard/internal/domain"
	"github.com/feral-file/ff-leaderboard/internal/logger"
	"github.com/feral-file/ff-leaderboard/internal/store"
	"github.com/feral-file/ff-leaderboard/internal/store/schema"
)

// anchors returns the last two distinct event calendar dates of family, or the
// configured fallback when the calendar holds fewer than two
func (e *executor) anchors(ctx context.Context, family domain.MetricFamily, fallback AnchorPair) (AnchorPair, error) {
	markers, err := e.store.ListEventMarkers(ctx, []domain.MetricFamily{family}, nil, nil)
	if err != nil {
		return AnchorPair{}, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list event markers: %v", err))
	}

	var dates []time.Time
	for _, m := range markers {
		d := analytics.Day(m.UpdateDate)
		if n := len(dates); n > 0 && dates[n-1].Equal(d) {
			continue
		}
		dates = append(dates, d)
	}
	if n := len(dates); n >= 2 {
		return AnchorPair{Base: dates[n-2], Target: dates[n-1]}, nil
	}

	logger.DebugCtx(ctx, "Event calendar has fewer than two markers, using configured anchors",
		zap.String("family", string(family)),
		zap.Int("markers", len(dates)),
	)
	return fallback, nil
}

// fetchPair retrieves the rows of the base and target dates concurrently
func fetchPair[T any](ctx context.Context, anchors AnchorPair, fetch func(context.Context, time.Time) ([]T, error)) (base, target []T, err error) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := fetch(gctx, anchors.Base)
		base = rows
		return err
	})
	g.Go(func() error {
		rows, err := fetch(gctx, anchors.Target)
		target = rows
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return base, target, nil
}

type valueFactorChange struct {
	user        string
	country     *string
	university  *string
	geniusLevel *string
	change      analytics.Change
}

func (c valueFactorChange) toDTO() dto.ValueFactorChange {
	return dto.ValueFactorChange{
		User:              c.user,
		Country:           c.country,
		University:        c.university,
		GeniusLevel:       c.geniusLevel,
		BaseValueFactor:   analytics.Round(c.change.Base, analytics.RatioPlaces),
		TargetValueFactor: analytics.Round(c.change.Target, analytics.RatioPlaces),
		Change:            analytics.Round(c.change.Delta(), analytics.RatioPlaces),
	}
}

type valueFactorCohort struct {
	anchors    AnchorPair
	membership analytics.Membership
	// comparable holds the users present on both dates in join order
	comparable []analytics.Pair[schema.ConsultantUser]
}

func (e *executor) valueFactorCohort(ctx context.Context) (*valueFactorCohort, error) {
	anchors, err := e.anchors(ctx, domain.MetricFamilyValueFactor, e.opts.ValueFactorAnchors)
	if err != nil {
		return nil, err
	}

	base, target, err := fetchPair(ctx, anchors, func(ctx context.Context, date time.Time) ([]schema.ConsultantUser, error) {
		rows, err := e.store.GetConsultantUsers(ctx, store.SnapshotFilter{RecordDates: []time.Time{date}})
		if err != nil {
			return nil, err
		}
		measured := make([]schema.ConsultantUser, 0, len(rows))
		for _, r := range rows {
			if r.ValueFactor != nil {
				measured = append(measured, r)
			}
		}
		return measured, nil
	})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get value factor snapshots: %v", err))
	}

	pairs, err := analytics.Join(ctx, base, target, func(u schema.ConsultantUser) string { return u.User })
	if err != nil {
		return nil, resolveError("join value factor snapshots", err)
	}

	return &valueFactorCohort{
		anchors:    anchors,
		membership: analytics.CountMembership(pairs),
		comparable: analytics.ComparablePairs(pairs),
	}, nil
}

func valueFactorOf(p analytics.Pair[schema.ConsultantUser]) analytics.Change {
	return analytics.Change{Base: *p.Base.ValueFactor, Target: *p.Target.ValueFactor}
}

func excludeBothHalf(pairs []analytics.Pair[schema.ConsultantUser]) []analytics.Pair[schema.ConsultantUser] {
	return analytics.Exclude(pairs, func(p analytics.Pair[schema.ConsultantUser]) bool {
		return analytics.BothNear(valueFactorOf(p), domain.VALUE_FACTOR_NEUTRAL, domain.EPSILON_VALUE_FACTOR)
	})
}

func toValueFactorDimensions(groups []analytics.DimensionSummary) []dto.ValueFactorDimension {
	out := make([]dto.ValueFactorDimension, len(groups))
	for i, g := range groups {
		out[i] = dto.ValueFactorDimension{
			Dimension:            g.Dimension,
			ComparableUsers:      g.Count,
			AvgTargetValueFactor: analytics.Round(g.AvgTarget, analytics.RatioPlaces),
			AvgBaseValueFactor:   analytics.Round(g.AvgBase, analytics.RatioPlaces),
			AvgChange:            analytics.Round(g.AvgChange, analytics.RatioPlaces),
			MedianChange:         analytics.Round(g.MedianChange, analytics.RatioPlaces),
			IncreasedUsers:       g.Increased,
			DecreasedUsers:       g.Decreased,
			UnchangedUsers:       g.Unchanged,
		}
	}
	return out
}

func toMembership(m analytics.Membership) dto.CohortMembership {
	return dto.CohortMembership{
		UsersOnTargetDate: m.OnTarget,
		UsersOnBaseDate:   m.OnBase,
		ComparableUsers:   m.Comparable,
		NewUsers:          m.New,
		MissingUsers:      m.Missing,
	}
}

func toDistribution(d analytics.Distribution) dto.Distribution {
	return dto.Distribution{Labels: d.Labels, Counts: d.Counts}
}

func (e *executor) GetValueFactorAnalysis(ctx context.Context, excludeHalf bool) (*dto.ValueFactorAnalysis, error) {
	cohort, err := e.valueFactorCohort(ctx)
	if err != nil {
		return nil, err
	}

	pairs := cohort.comparable
	if excludeHalf {
		pairs = excludeBothHalf(pairs)
	}

	changes := make([]valueFactorChange, len(pairs))
	deltas := make([]float64, len(pairs))
	summaryInput := make([]analytics.Change, len(pairs))
	for i, p := range pairs {
		changes[i] = valueFactorChange{
			user:       p.Key,
			country:    firstNonNil(p.Target.Country, p.Base.Country),
			university: firstNonNil(p.Target.University, p.Base.University),
			change:     valueFactorOf(p),
		}
		summaryInput[i] = changes[i].change
		deltas[i] = changes[i].change.Delta()
	}

	changeOf := func(c valueFactorChange) analytics.Change { return c.change }
	byCountry, err := analytics.SummarizeBy(ctx, changes, func(c valueFactorChange) string { return domain.DimensionOrUnknown(c.country) }, changeOf, constants.TOP_MOVERS)
	if err != nil {
		return nil, resolveError("summarize by country", err)
	}
	byUniversity, err := analytics.SummarizeBy(ctx, changes, func(c valueFactorChange) string { return domain.DimensionOrUnknown(c.university) }, changeOf, constants.TOP_MOVERS)
	if err != nil {
		return nil, resolveError("summarize by university", err)
	}

	gainers, decliners := analytics.TopMovers(changes, func(c valueFactorChange) float64 { return c.change.Delta() }, constants.TOP_MOVERS)
	topGainers := make([]dto.ValueFactorChange, len(gainers))
	for i, c := range gainers {
		topGainers[i] = c.toDTO()
	}
	topDecliners := make([]dto.ValueFactorChange, len(decliners))
	for i, c := range decliners {
		topDecliners[i] = c.toDTO()
	}

	// Comparable counts the users the summary actually covers
	membership := cohort.membership
	membership.Comparable = len(pairs)

	s := analytics.Summarize(summaryInput)
	return &dto.ValueFactorAnalysis{
		BaseRecordDate:   analytics.FormatDate(cohort.anchors.Base),
		TargetRecordDate: analytics.FormatDate(cohort.anchors.Target),
		Summary: dto.ValueFactorSummary{
			CohortMembership:     toMembership(membership),
			IncreasedUsers:       s.Increased,
			DecreasedUsers:       s.Decreased,
			UnchangedUsers:       s.Unchanged,
			AvgTargetValueFactor: analytics.Round(s.AvgTarget, analytics.RatioPlaces),
			AvgBaseValueFactor:   analytics.Round(s.AvgBase, analytics.RatioPlaces),
			AvgChange:            analytics.Round(s.AvgChange, analytics.RatioPlaces),
			MedianChange:         analytics.Round(s.MedianChange, analytics.RatioPlaces),
			MaxIncrease:          analytics.Round(s.MaxIncrease, analytics.RatioPlaces),
			MaxDecrease:          analytics.Round(s.MaxDecrease, analytics.RatioPlaces),
		},
		ByCountry:    toValueFactorDimensions(byCountry),
		ByUniversity: toValueFactorDimensions(byUniversity),
		TopGainers:   topGainers,
		TopDecliners: topDecliners,
		Distribution: toDistribution(analytics.BuildDistribution(deltas, analytics.DefaultBins)),
	}, nil
}

var valueFactorSortKeys = map[types.ValueFactorSortField]func(valueFactorChange) float64{
	types.ValueFactorSortChange: func(c valueFactorChange) float64 { return c.change.Delta() },
	types.ValueFactorSortBase:   func(c valueFactorChange) float64 { return c.change.Base },
	types.ValueFactorSortTarget: func(c valueFactorChange) float64 { return c.change.Target },
}

func (e *executor) GetValueFactorUserChanges(ctx context.Context, params ValueFactorUserChangesParams) (*dto.Page[dto.ValueFactorChange], error) {
	sortBy := params.SortBy
	if sortBy == "" {
		sortBy = types.ValueFactorSortChange
	}
	key, ok := valueFactorSortKeys[sortBy]
	if !ok {
		return nil, apierrors.NewBadRequestError(fmt.Sprintf("Invalid sort_by: %s", sortBy))
	}

	cohort, err := e.valueFactorCohort(ctx)
	if err != nil {
		return nil, err
	}

	base, target, err := fetchPair(ctx, cohort.anchors, func(ctx context.Context, date time.Time) ([]schema.GeniusUser, error) {
		return e.store.GetGeniusUsers(ctx, store.SnapshotFilter{RecordDates: []time.Time{date}})
	})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get genius snapshots: %v", err))
	}
	geniusBase, geniusTarget := indexGenius(base), indexGenius(target)

	pairs := cohort.comparable
	if params.ExcludeBothHalf {
		pairs = excludeBothHalf(pairs)
	}

	countries, levels := toSet(params.Countries), toSet(params.GeniusLevels)
	changes := make([]valueFactorChange, 0, len(pairs))
	for _, p := range pairs {
		gb, gt := geniusBase[p.Key], geniusTarget[p.Key]
		c := valueFactorChange{
			user:        p.Key,
			country:     firstNonNil(geniusCountry(gt), geniusCountry(gb), p.Target.Country, p.Base.Country),
			university:  firstNonNil(p.Target.University, p.Base.University),
			geniusLevel: firstNonNil(geniusLevel(gt), geniusLevel(gb)),
			change:      valueFactorOf(p),
		}
		if !inSet(countries, c.country) || !inSet(levels, c.geniusLevel) {
			continue
		}
		changes = append(changes, c)
	}

	order := types.ToSortOrder(params.Order)
	if params.Order == "" {
		order = types.ToSortOrder(constants.DEFAULT_ORDER)
	}
	analytics.SortByKey(changes, key, order)

	pageRows := analytics.Paginate(changes, params.Page, params.PageSize)
	items := make([]dto.ValueFactorChange, len(pageRows))
	for i, c := range pageRows {
		items[i] = c.toDTO()
	}
	return dto.NewPage(items, len(changes), params.Page, params.PageSize), nil
}

func indexGenius(rows []schema.GeniusUser) map[string]*schema.GeniusUser {
	index := make(map[string]*schema.GeniusUser, len(rows))
	for i := range rows {
		if _, ok := index[rows[i].User]; !ok {
			index[rows[i].User] = &rows[i]
		}
	}
	return index
}

func geniusCountry(g *schema.GeniusUser) *string {
	if g == nil {
		return nil
	}
	return g.Country
}

func geniusLevel(g *schema.GeniusUser) *string {
	if g == nil {
		return nil
	}
	return g.GeniusLevel
}

// combinedMetric names one combined performance figure
type combinedMetric struct {
	name        string
	displayName string
	read        func(schema.GeniusUser) *float64
	change      func(combinedChange) analytics.Change
}

var combinedMetrics = []combinedMetric{
	{
		name:        "combined_alpha_performance",
		displayName: "Combined Alpha",
		read:        func(g schema.GeniusUser) *float64 { return g.CombinedAlphaPerformance },
		change:      func(c combinedChange) analytics.Change { return c.alpha },
	},
	{
		name:        "combined_power_pool_alpha_performance",
		displayName: "Power Pool",
		read:        func(g schema.GeniusUser) *float64 { return g.CombinedPowerPoolAlphaPerformance },
		change:      func(c combinedChange) analytics.Change { return c.powerPool },
	},
	{
		name:        "combined_selected_alpha_performance",
		displayName: "Selected Alpha",
		read:        func(g schema.GeniusUser) *float64 { return g.CombinedSelectedAlphaPerformance },
		change:      func(c combinedChange) analytics.Change { return c.selected },
	},
}

type combinedChange struct {
	user      string
	country   *string
	level     *string
	alpha     analytics.Change
	powerPool analytics.Change
	selected  analytics.Change
}

func (c combinedChange) toDTO() dto.CombinedUserChange {
	round := func(v float64) float64 { return analytics.Round(v, analytics.RatioPlaces) }
	return dto.CombinedUserChange{
		User:            c.user,
		Country:         c.country,
		GeniusLevel:     c.level,
		BaseAlpha:       round(c.alpha.Base),
		TargetAlpha:     round(c.alpha.Target),
		AlphaChange:     round(c.alpha.Delta()),
		BasePowerPool:   round(c.powerPool.Base),
		TargetPowerPool: round(c.powerPool.Target),
		PowerPoolChange: round(c.powerPool.Delta()),
		BaseSelected:    round(c.selected.Base),
		TargetSelected:  round(c.selected.Target),
		SelectedChange:  round(c.selected.Delta()),
	}
}

// combinedReady reports whether every combined figure is measured
func combinedReady(g schema.GeniusUser) bool {
	for _, m := range combinedMetrics {
		if m.read(g) == nil {
			return false
		}
	}
	return true
}

// combinedCohort returns the anchors, the membership of ready users and the
// filtered comparable changes
func (e *executor) combinedCohort(ctx context.Context, filter CombinedFilter) (AnchorPair, analytics.Membership, []combinedChange, error) {
	anchors, err := e.anchors(ctx, domain.MetricFamilyCombined, e.opts.CombinedAnchors)
	if err != nil {
		return AnchorPair{}, analytics.Membership{}, nil, err
	}

	base, target, err := fetchPair(ctx, anchors, func(ctx context.Context, date time.Time) ([]schema.GeniusUser, error) {
		rows, err := e.store.GetGeniusUsers(ctx, store.SnapshotFilter{RecordDates: []time.Time{date}})
		if err != nil {
			return nil, err
		}
		ready := make([]schema.GeniusUser, 0, len(rows))
		for _, r := range rows {
			if combinedReady(r) {
				ready = append(ready, r)
			}
		}
		return ready, nil
	})
	if err != nil {
		return AnchorPair{}, analytics.Membership{}, nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get combined snapshots: %v", err))
	}

	pairs, err := analytics.Join(ctx, base, target, func(g schema.GeniusUser) string { return g.User })
	if err != nil {
		return AnchorPair{}, analytics.Membership{}, nil, resolveError("join combined snapshots", err)
	}
	membership := analytics.CountMembership(pairs)

	countries, levels := toSet(filter.Countries), toSet(filter.Levels)
	bothZero := func(c analytics.Change) bool {
		return analytics.BothNear(c, 0, domain.EPSILON_COMBINED)
	}

	var changes []combinedChange
	for _, p := range analytics.ComparablePairs(pairs) {
		c := combinedChange{
			user:      p.Key,
			country:   firstNonNil(p.Target.Country, p.Base.Country),
			level:     firstNonNil(p.Target.GeniusLevel, p.Base.GeniusLevel),
			alpha:     analytics.Change{Base: *p.Base.CombinedAlphaPerformance, Target: *p.Target.CombinedAlphaPerformance},
			powerPool: analytics.Change{Base: *p.Base.CombinedPowerPoolAlphaPerformance, Target: *p.Target.CombinedPowerPoolAlphaPerformance},
			selected:  analytics.Change{Base: *p.Base.CombinedSelectedAlphaPerformance, Target: *p.Target.CombinedSelectedAlphaPerformance},
		}
		switch {
		case !inSet(countries, c.country), !inSet(levels, c.level):
			continue
		case filter.ExcludeAlphaBothZero && bothZero(c.alpha):
			continue
		case filter.ExcludePowerPoolBothZero && bothZero(c.powerPool):
			continue
		case filter.ExcludeSelectedBothZero && bothZero(c.selected):
			continue
		}
		changes = append(changes, c)
	}
	return anchors, membership, changes, nil
}

func (e *executor) GetCombinedAnalysis(ctx context.Context, filter CombinedFilter) (*dto.CombinedAnalysis, error) {
	anchors, membership, changes, err := e.combinedCohort(ctx, filter)
	if err != nil {
		return nil, err
	}

	summary := toMembership(membership)
	summary.ComparableUsers = len(changes)

	analysis := &dto.CombinedAnalysis{
		BaseRecordDate:   analytics.FormatDate(anchors.Base),
		TargetRecordDate: analytics.FormatDate(anchors.Target),
		Summary:          summary,
		MetricSummaries:  make([]dto.CombinedMetricSummary, len(combinedMetrics)),
		Distributions:    make(map[string]dto.Distribution, len(combinedMetrics)),
	}
	for i, m := range combinedMetrics {
		values := make([]analytics.Change, len(changes))
		deltas := make([]float64, len(changes))
		for j, c := range changes {
			values[j] = m.change(c)
			deltas[j] = values[j].Delta()
		}
		s := analytics.Summarize(values)
		analysis.MetricSummaries[i] = dto.CombinedMetricSummary{
			Metric:         m.name,
			DisplayName:    m.displayName,
			AvgTarget:      analytics.Round(s.AvgTarget, analytics.RatioPlaces),
			AvgBase:        analytics.Round(s.AvgBase, analytics.RatioPlaces),
			AvgChange:      analytics.Round(s.AvgChange, analytics.RatioPlaces),
			MedianChange:   analytics.Round(s.MedianChange, analytics.RatioPlaces),
			MaxIncrease:    analytics.Round(s.MaxIncrease, analytics.RatioPlaces),
			MaxDecrease:    analytics.Round(s.MaxDecrease, analytics.RatioPlaces),
			IncreasedUsers: s.Increased,
			DecreasedUsers: s.Decreased,
			UnchangedUsers: s.Unchanged,
		}
		analysis.Distributions[m.name] = toDistribution(analytics.BuildDistribution(deltas, analytics.DefaultBins))
	}
	return analysis, nil
}

var combinedSortKeys = map[types.CombinedSortField]func(combinedChange) float64{
	types.CombinedSortAlphaChange:     func(c combinedChange) float64 { return c.alpha.Delta() },
	types.CombinedSortPowerPoolChange: func(c combinedChange) float64 { return c.powerPool.Delta() },
	types.CombinedSortSelectedChange:  func(c combinedChange) float64 { return c.selected.Delta() },
	types.CombinedSortBaseAlpha:       func(c combinedChange) float64 { return c.alpha.Base },
	types.CombinedSortTargetAlpha:     func(c combinedChange) float64 { return c.alpha.Target },
	types.CombinedSortBasePowerPool:   func(c combinedChange) float64 { return c.powerPool.Base },
	types.CombinedSortTargetPowerPool: func(c combinedChange) float64 { return c.powerPool.Target },
	types.CombinedSortBaseSelected:    func(c combinedChange) float64 { return c.selected.Base },
	types.CombinedSortTargetSelected:  func(c combinedChange) float64 { return c.selected.Target },
}

func (e *executor) GetCombinedUserChanges(ctx context.Context, params CombinedUserChangesParams) (*dto.Page[dto.CombinedUserChange], error) {
	sortBy := params.SortBy
	if sortBy == "" {
		sortBy = types.CombinedSortAlphaChange
	}
	key, ok := combinedSortKeys[sortBy]
	if !ok {
		return nil, apierrors.NewBadRequestError(fmt.Sprintf("Invalid sort_by: %s", sortBy))
	}

	_, _, changes, err := e.combinedCohort(ctx, params.CombinedFilter)
	if err != nil {
		return nil, err
	}

	order := types.ToSortOrder(params.Order)
	if params.Order == "" {
		order = types.ToSortOrder(constants.DEFAULT_ORDER)
	}
	analytics.SortByKey(changes, key, order)

	pageRows := analytics.Paginate(changes, params.Page, params.PageSize)
	items := make([]dto.CombinedUserChange, len(pageRows))
	for i, c := range pageRows {
		items[i] = c.toDTO()
	}
	return dto.NewPage(items, len(changes), params.Page, params.PageSize), nil
}

// eventDate is one event calendar date with its display label
type eventDate struct {
	date  time.Time
	label string
}

// eventDates collapses markers to one entry per date, the last marker of a date winning
func eventDates(markers []schema.EventUpdateRecord, family domain.MetricFamily) []eventDate {
	var out []eventDate
	for _, m := range markers {
		f, err := domain.ParseMetricFamily(m.UpdateContent)
		if err != nil || f != family {
			continue
		}
		d := analytics.Day(m.UpdateDate)
		label := analytics.FormatDate(d)
		if m.DateRange != nil && *m.DateRange != "" {
			label = *m.DateRange
		}
		if n := len(out); n > 0 && out[n-1].date.Equal(d) {
			out[n-1].label = label
			continue
		}
		out = append(out, eventDate{date: d, label: label})
	}
	return out
}

func datesOf(events []eventDate) []time.Time {
	dates := make([]time.Time, len(events))
	for i, ev := range events {
		dates[i] = ev.date
	}
	return dates
}

func (e *executor) GetUserMetricTrends(ctx context.Context, user string) (*dto.UserMetricTrends, error) {
	user = domain.NormalizeWQID(user)
	trends := &dto.UserMetricTrends{
		User:             user,
		ValueFactorTrend: []dto.ValueFactorTrendPoint{},
		CombinedTrend:    []dto.CombinedTrendPoint{},
	}
	if user == "" {
		return trends, nil
	}

	markers, err := e.store.ListEventMarkers(ctx, []domain.MetricFamily{domain.MetricFamilyValueFactor, domain.MetricFamilyCombined}, nil, nil)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list event markers: %v", err))
	}
	valueEvents := eventDates(markers, domain.MetricFamilyValueFactor)
	combinedEvents := eventDates(markers, domain.MetricFamilyCombined)

	var consultants []schema.ConsultantUser
	var genius []schema.GeniusUser
	g, gctx := errgroup.WithContext(ctx)
	if len(valueEvents) > 0 {
		g.Go(func() error {
			rows, err := e.store.GetConsultantUsers(gctx, store.SnapshotFilter{Users: []string{user}, RecordDates: datesOf(valueEvents)})
			consultants = rows
			return err
		})
	}
	if len(combinedEvents) > 0 {
		g.Go(func() error {
			rows, err := e.store.GetGeniusUsers(gctx, store.SnapshotFilter{Users: []string{user}, RecordDates: datesOf(combinedEvents)})
			genius = rows
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get user trend snapshots: %v", err))
	}

	valueByDate := make(map[time.Time]*float64)
	for _, c := range consultants {
		d := analytics.Day(c.RecordDate)
		valueByDate[d] = maxPtr(valueByDate[d], c.ValueFactor)
	}
	for _, ev := range valueEvents {
		trends.ValueFactorTrend = append(trends.ValueFactorTrend, dto.ValueFactorTrendPoint{
			UpdateDate:  analytics.FormatDate(ev.date),
			DateRange:   ev.label,
			ValueFactor: valueByDate[ev.date],
		})
	}

	combinedByDate := make(map[time.Time]*dto.CombinedTrendPoint)
	for _, r := range genius {
		d := analytics.Day(r.RecordDate)
		p, ok := combinedByDate[d]
		if !ok {
			p = &dto.CombinedTrendPoint{}
			combinedByDate[d] = p
		}
		p.CombinedAlphaPerformance = maxPtr(p.CombinedAlphaPerformance, r.CombinedAlphaPerformance)
		p.CombinedPowerPoolPerformance = maxPtr(p.CombinedPowerPoolPerformance, r.CombinedPowerPoolAlphaPerformance)
		p.CombinedSelectedPerformance = maxPtr(p.CombinedSelectedPerformance, r.CombinedSelectedAlphaPerformance)
	}
	for _, ev := range combinedEvents {
		point := dto.CombinedTrendPoint{}
		if p, ok := combinedByDate[ev.date]; ok {
			point = *p
		}
		point.UpdateDate = analytics.FormatDate(ev.date)
		point.DateRange = ev.label
		trends.CombinedTrend = append(trends.CombinedTrend, point)
	}
	return trends, nil
}
