package executor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/feral-file/ff-leaderboard/internal/analytics"
	"github.com/feral-file/ff-leaderboard/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-leaderboard/internal/api/shared/errors"
	"github.com/feral-file/ff-leaderboard/internal/api/shared/types"
	"github.com/feral-file/ff-leaderboard/internal/domain"
	"github.com/feral-file/ff-leaderboard/internal/store"
	"github.com/feral-file/ff-leaderboard/internal/store/schema"
)

// correlationPair reads the regular and super alpha correlation of one kind
type correlationPair struct {
	regular    func(schema.ConsultantUser) *float64
	superAlpha func(schema.ConsultantUser) *float64
}

var correlationPairs = map[domain.CorrelationType]correlationPair{
	domain.CorrelationProd: {
		regular:    func(u schema.ConsultantUser) *float64 { return u.MeanProdCorrelation },
		superAlpha: func(u schema.ConsultantUser) *float64 { return u.SuperAlphaMeanProdCorrelation },
	},
	domain.CorrelationSelf: {
		regular:    func(u schema.ConsultantUser) *float64 { return u.MeanSelfCorrelation },
		superAlpha: func(u schema.ConsultantUser) *float64 { return u.SuperAlphaMeanSelfCorrelation },
	},
}

func (e *executor) GetCountryRankings(ctx context.Context, quarter *analytics.Quarter, page, pageSize int) (*dto.Page[dto.CountryRanking], error) {
	cmp, err := analytics.ResolveComparison(ctx, e.dates(domain.TableConsultantCountry), analytics.ComparisonHint{
		Quarter: quarter,
		Rule:    analytics.BaselinePreviousSnapshot,
	})
	if err != nil {
		return nil, resolveError("resolve country ranking dates", err)
	}
	if cmp.Empty {
		return dto.EmptyPage[dto.CountryRanking](page, pageSize), nil
	}

	current, err := e.store.GetConsultantCountries(ctx, store.SnapshotFilter{RecordDates: []time.Time{cmp.Current}})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get country snapshots: %v", err))
	}

	baseline := make(map[string]schema.ConsultantCountry)
	if cmp.Baseline != nil {
		rows, err := e.store.GetConsultantCountries(ctx, store.SnapshotFilter{RecordDates: []time.Time{*cmp.Baseline}})
		if err != nil {
			return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get baseline country snapshots: %v", err))
		}
		for _, r := range rows {
			baseline[r.Country] = r
		}
	}

	rows := make([]schema.ConsultantCountry, 0, len(current))
	for _, r := range current {
		if r.Country != "" {
			rows = append(rows, r)
		}
	}
	analytics.SortByNullableKey(rows, func(r schema.ConsultantCountry) *float64 { return r.WeightFactor }, analytics.SortDesc)

	pageRows := analytics.Paginate(rows, page, pageSize)
	items := make([]dto.CountryRanking, len(pageRows))
	for i, r := range pageRows {
		item := dto.CountryRanking{
			Country:                       r.Country,
			UserCount:                     deref(r.UserCount),
			WeightFactor:                  analytics.Round(deref(r.WeightFactor), analytics.WeightPlaces),
			ValueFactor:                   analytics.RoundPtr(r.ValueFactor, analytics.RatioPlaces),
			SubmissionsCount:              deref(r.SubmissionsCount),
			SuperAlphaSubmissionsCount:    deref(r.SuperAlphaSubmissionsCount),
			TotalSubmissions:              deref(r.SubmissionsCount) + deref(r.SuperAlphaSubmissionsCount),
			MeanProdCorrelation:           analytics.RoundPtr(r.MeanProdCorrelation, analytics.RatioPlaces),
			MeanSelfCorrelation:           analytics.RoundPtr(r.MeanSelfCorrelation, analytics.RatioPlaces),
			SuperAlphaMeanProdCorrelation: analytics.RoundPtr(r.SuperAlphaMeanProdCorrelation, analytics.RatioPlaces),
			SuperAlphaMeanSelfCorrelation: analytics.RoundPtr(r.SuperAlphaMeanSelfCorrelation, analytics.RatioPlaces),
		}
		if base, ok := baseline[r.Country]; ok {
			item.WeightChange = floatChange(r.WeightFactor, base.WeightFactor, analytics.WeightPlaces)
			item.ValueChange = floatChange(r.ValueFactor, base.ValueFactor, analytics.RatioPlaces)
			item.SubmissionsChange = intChange(r.SubmissionsCount, base.SubmissionsCount)
			item.SuperAlphaSubmissionsChange = intChange(r.SuperAlphaSubmissionsCount, base.SuperAlphaSubmissionsCount)
			item.TotalSubmissionsChange = sumChanges(item.SubmissionsChange, item.SuperAlphaSubmissionsChange)
			item.ProdCorrChange = floatChange(r.MeanProdCorrelation, base.MeanProdCorrelation, analytics.RatioPlaces)
			item.SelfCorrChange = floatChange(r.MeanSelfCorrelation, base.MeanSelfCorrelation, analytics.RatioPlaces)
		}
		items[i] = item
	}

	return dto.NewPage(items, len(rows), page, pageSize), nil
}

func (e *executor) GetCountryHistory(ctx context.Context, country string, page, pageSize int) (*dto.Page[dto.CountryHistory], error) {
	rows, total, err := e.store.ListConsultantCountryHistory(ctx, country, pageSize, analytics.Offset(page, pageSize))
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get country history: %v", err))
	}

	items := make([]dto.CountryHistory, len(rows))
	for i, r := range rows {
		items[i] = dto.CountryHistory{
			RecordDate:                    analytics.FormatDate(r.RecordDate),
			UserCount:                     deref(r.UserCount),
			WeightFactor:                  analytics.Round(deref(r.WeightFactor), analytics.WeightPlaces),
			ValueFactor:                   analytics.RoundPtr(r.ValueFactor, analytics.RatioPlaces),
			SubmissionsCount:              deref(r.SubmissionsCount),
			SuperAlphaSubmissionsCount:    deref(r.SuperAlphaSubmissionsCount),
			TotalSubmissions:              deref(r.SubmissionsCount) + deref(r.SuperAlphaSubmissionsCount),
			MeanProdCorrelation:           analytics.RoundPtr(r.MeanProdCorrelation, analytics.RatioPlaces),
			MeanSelfCorrelation:           analytics.RoundPtr(r.MeanSelfCorrelation, analytics.RatioPlaces),
			SuperAlphaMeanProdCorrelation: analytics.RoundPtr(r.SuperAlphaMeanProdCorrelation, analytics.RatioPlaces),
			SuperAlphaMeanSelfCorrelation: analytics.RoundPtr(r.SuperAlphaMeanSelfCorrelation, analytics.RatioPlaces),
		}
	}

	return dto.NewPage(items, int(total), page, pageSize), nil
}

func (e *executor) GetUniversityRankings(ctx context.Context, quarter *analytics.Quarter, page, pageSize int) (*dto.Page[dto.UniversityRanking], error) {
	latest, err := e.latestDate(ctx, domain.TableConsultantUser, quarter)
	if err != nil {
		return nil, err
	}
	if latest == nil {
		return dto.EmptyPage[dto.UniversityRanking](page, pageSize), nil
	}

	users, err := e.store.GetConsultantUsers(ctx, store.SnapshotFilter{RecordDates: []time.Time{*latest}})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get consultant snapshots: %v", err))
	}

	ranked := make([]schema.ConsultantUser, 0, len(users))
	for _, u := range users {
		if u.University == nil || strings.TrimSpace(*u.University) == "" || u.WeightFactor == nil {
			continue
		}
		ranked = append(ranked, u)
	}

	groups, err := analytics.GroupSeries(ctx, ranked, func(u schema.ConsultantUser) string { return *u.University })
	if err != nil {
		return nil, resolveError("group universities", err)
	}

	rankings := make([]dto.UniversityRanking, len(groups))
	for i, g := range groups {
		members := make(map[string]struct{}, len(g.Rows))
		var sum, maxWeight float64
		var submissions int64
		for j, u := range g.Rows {
			members[u.User] = struct{}{}
			sum += *u.WeightFactor
			if j == 0 || *u.WeightFactor > maxWeight {
				maxWeight = *u.WeightFactor
			}
			if u.SubmissionsCount != nil && u.SuperAlphaSubmissionsCount != nil {
				submissions += *u.SubmissionsCount + *u.SuperAlphaSubmissionsCount
			}
		}
		rankings[i] = dto.UniversityRanking{
			University:       g.Entity,
			UserCount:        len(members),
			AvgWeight:        analytics.Round(sum/float64(len(g.Rows)), analytics.WeightPlaces),
			MaxWeight:        analytics.Round(maxWeight, analytics.WeightPlaces),
			TotalSubmissions: submissions,
		}
	}
	analytics.SortByKey(rankings, func(r dto.UniversityRanking) float64 { return r.AvgWeight }, analytics.SortDesc)

	return dto.NewPage(analytics.Paginate(rankings, page, pageSize), len(rankings), page, pageSize), nil
}

// currentUsers retrieves the consultant snapshots of the latest date with a measured weight
func (e *executor) currentUsers(ctx context.Context, country *string) ([]schema.ConsultantUser, error) {
	latest, err := e.latestDate(ctx, domain.TableConsultantUser, nil)
	if err != nil {
		return nil, err
	}
	if latest == nil {
		return nil, nil
	}
	return e.weightedUsersOn(ctx, *latest, country)
}

func (e *executor) weightedUsersOn(ctx context.Context, date time.Time, country *string) ([]schema.ConsultantUser, error) {
	users, err := e.usersOn(ctx, date, country)
	if err != nil {
		return nil, err
	}

	weighted := make([]schema.ConsultantUser, 0, len(users))
	for _, u := range users {
		if u.WeightFactor != nil {
			weighted = append(weighted, u)
		}
	}
	return weighted, nil
}

func (e *executor) GetTopUsersByWeight(ctx context.Context, country *string, page, pageSize int) (*dto.Page[dto.UserWeightRanking], error) {
	users, err := e.currentUsers(ctx, country)
	if err != nil {
		return nil, err
	}

	ranked, err := analytics.Rank(ctx, users, func(u schema.ConsultantUser) float64 { return *u.WeightFactor }, analytics.SortDesc)
	if err != nil {
		return nil, resolveError("rank users", err)
	}

	pageRows := analytics.Paginate(ranked, page, pageSize)
	items := make([]dto.UserWeightRanking, len(pageRows))
	for i, r := range pageRows {
		u := r.Item
		items[i] = dto.UserWeightRanking{
			Rank:             r.Rank,
			User:             u.User,
			WeightFactor:     analytics.Round(*u.WeightFactor, analytics.WeightPlaces),
			ValueFactor:      analytics.RoundPtr(nonZero(u.ValueFactor), analytics.RatioPlaces),
			TotalSubmissions: deref(u.SubmissionsCount) + deref(u.SuperAlphaSubmissionsCount),
			Country:          u.Country,
			University:       u.University,
		}
	}

	return dto.NewPage(items, len(ranked), page, pageSize), nil
}

type userWeightChange struct {
	user  schema.ConsultantUser
	delta analytics.Delta
}

func (e *executor) GetTopUsersByWeightChange(ctx context.Context, quarter *analytics.Quarter, order types.Order, country *string, page, pageSize int) (*dto.Page[dto.UserWeightChangeRanking], error) {
	cmp, err := analytics.ResolveComparison(ctx, e.dates(domain.TableConsultantUser), analytics.ComparisonHint{
		Quarter: quarter,
		Rule:    analytics.BaselinePreviousDay,
	})
	if err != nil {
		return nil, resolveError("resolve weight change dates", err)
	}
	if cmp.Empty {
		return dto.EmptyPage[dto.UserWeightChangeRanking](page, pageSize), nil
	}

	users, err := e.weightedUsersOn(ctx, cmp.Current, country)
	if err != nil {
		return nil, err
	}

	// Baseline is unfiltered so users who changed country keep their history
	baseline := make(map[string]float64)
	if cmp.Baseline != nil {
		historical, err := e.weightedUsersOn(ctx, *cmp.Baseline, nil)
		if err != nil {
			return nil, err
		}
		for _, u := range historical {
			baseline[u.User] = *u.WeightFactor
		}
	}

	changes := make([]userWeightChange, 0, len(users))
	for _, u := range users {
		var base *float64
		if w, ok := baseline[u.User]; ok {
			base = &w
		}
		delta, ok := analytics.ComputeDelta(*u.WeightFactor, base, analytics.WeightDelta)
		if !ok {
			continue
		}
		changes = append(changes, userWeightChange{user: u, delta: delta})
	}

	ranked, err := analytics.Rank(ctx, changes, func(c userWeightChange) float64 { return c.delta.Change }, types.ToSortOrder(order))
	if err != nil {
		return nil, resolveError("rank weight changes", err)
	}

	pageRows := analytics.Paginate(ranked, page, pageSize)
	items := make([]dto.UserWeightChangeRanking, len(pageRows))
	for i, r := range pageRows {
		c := r.Item
		items[i] = dto.UserWeightChangeRanking{
			Rank:          r.Rank,
			User:          c.user.User,
			CurrentWeight: analytics.Round(c.delta.Current, analytics.WeightPlaces),
			WeightChange:  analytics.Round(c.delta.Change, analytics.WeightPlaces),
			Country:       c.user.Country,
			University:    c.user.University,
		}
	}

	return dto.NewPage(items, len(ranked), page, pageSize), nil
}

func (e *executor) GetTopUsersBySubmissions(ctx context.Context, country *string, page, pageSize int) (*dto.Page[dto.UserSubmissionsRanking], error) {
	latest, err := e.latestDate(ctx, domain.TableConsultantUser, nil)
	if err != nil {
		return nil, err
	}
	if latest == nil {
		return dto.EmptyPage[dto.UserSubmissionsRanking](page, pageSize), nil
	}

	users, err := e.usersOn(ctx, *latest, country)
	if err != nil {
		return nil, err
	}

	total := func(u schema.ConsultantUser) float64 {
		return float64(deref(u.SubmissionsCount) + deref(u.SuperAlphaSubmissionsCount))
	}
	ranked, err := analytics.Rank(ctx, users, total, analytics.SortDesc)
	if err != nil {
		return nil, resolveError("rank submissions", err)
	}

	pageRows := analytics.Paginate(ranked, page, pageSize)
	items := make([]dto.UserSubmissionsRanking, len(pageRows))
	for i, r := range pageRows {
		u := r.Item
		items[i] = dto.UserSubmissionsRanking{
			Rank:                  r.Rank,
			User:                  u.User,
			WeightFactor:          analytics.RoundPtr(nonZero(u.WeightFactor), analytics.WeightPlaces),
			RegularSubmissions:    deref(u.SubmissionsCount),
			SuperAlphaSubmissions: deref(u.SuperAlphaSubmissionsCount),
			TotalSubmissions:      deref(u.SubmissionsCount) + deref(u.SuperAlphaSubmissionsCount),
			Country:               u.Country,
			University:            u.University,
		}
	}

	return dto.NewPage(items, len(ranked), page, pageSize), nil
}

func (e *executor) GetTopUsersByCorrelation(ctx context.Context, correlation domain.CorrelationType, country *string, page, pageSize int) (*dto.Page[dto.UserCorrelationRanking], error) {
	pair, ok := correlationPairs[correlation]
	if !ok {
		return nil, apierrors.NewBadRequestError(fmt.Sprintf("Invalid correlation_type: %s. Must be one of prod, self", correlation))
	}

	latest, err := e.latestDate(ctx, domain.TableConsultantUser, nil)
	if err != nil {
		return nil, err
	}
	if latest == nil {
		return dto.EmptyPage[dto.UserCorrelationRanking](page, pageSize), nil
	}

	users, err := e.usersOn(ctx, *latest, country)
	if err != nil {
		return nil, err
	}

	avg := func(u schema.ConsultantUser) float64 {
		return (deref(pair.regular(u)) + deref(pair.superAlpha(u))) / 2
	}
	ranked, err := analytics.Rank(ctx, users, avg, analytics.SortDesc)
	if err != nil {
		return nil, resolveError("rank correlations", err)
	}

	pageRows := analytics.Paginate(ranked, page, pageSize)
	items := make([]dto.UserCorrelationRanking, len(pageRows))
	for i, r := range pageRows {
		u := r.Item
		items[i] = dto.UserCorrelationRanking{
			Rank:                  r.Rank,
			User:                  u.User,
			WeightFactor:          analytics.RoundPtr(nonZero(u.WeightFactor), analytics.WeightPlaces),
			RegularCorrelation:    analytics.RoundPtr(nonZero(pair.regular(u)), analytics.RatioPlaces),
			SuperAlphaCorrelation: analytics.RoundPtr(nonZero(pair.superAlpha(u)), analytics.RatioPlaces),
			AvgCorrelation:        analytics.Round(avg(u), analytics.RatioPlaces),
			Country:               u.Country,
			University:            u.University,
		}
	}

	return dto.NewPage(items, len(ranked), page, pageSize), nil
}

func (e *executor) usersOn(ctx context.Context, date time.Time, country *string) ([]schema.ConsultantUser, error) {
	filter := store.SnapshotFilter{RecordDates: []time.Time{date}}
	if country != nil {
		filter.Countries = []string{*country}
	}
	users, err := e.store.GetConsultantUsers(ctx, filter)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get consultant snapshots: %v", err))
	}
	return users, nil
}
