package queries

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// SalesSummary aggregates revenue for the admin dashboard
type SalesSummary struct {
	TotalSalesAmount     float64 `json:"totalSalesAmount"`
	ThisYearSalesAmount  float64 `json:"thisYearSalesAmount"`
	ThisMonthSalesAmount float64 `json:"thisMonthSalesAmount"`
}

// MonthlySales is one year of per-month sales figures
type MonthlySales struct {
	Year         int         `json:"year"`
	YearlyTotal  float64     `json:"yearlyTotal"`
	MonthlyTotal [12]float64 `json:"monthlyTotal"`
}

// GetSalesSummary computes lifetime, this-year and this-month revenue in a
// single $facet aggregation over the payments collection.
func (q *Queries) GetSalesSummary(ctx context.Context, now time.Time) (SalesSummary, error) {
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	sumStage := bson.A{
		bson.M{"$group": bson.M{"_id": nil, "totalAmount": bson.M{"$sum": "$amount"}}},
	}
	pipeline := bson.A{
		bson.M{"$facet": bson.M{
			"totalSales": sumStage,
			"thisYearSales": append(bson.A{
				bson.M{"$match": bson.M{"purchaseDate": bson.M{"$gte": yearStart}}},
			}, sumStage...),
			"thisMonthSales": append(bson.A{
				bson.M{"$match": bson.M{"purchaseDate": bson.M{"$gte": monthStart}}},
			}, sumStage...),
		}},
	}

	cursor, err := q.col(colPayments).Aggregate(ctx, pipeline)
	if err != nil {
		return SalesSummary{}, err
	}
	defer cursor.Close(ctx)

	var facets []struct {
		TotalSales     []struct{ TotalAmount float64 `bson:"totalAmount"` } `bson:"totalSales"`
		ThisYearSales  []struct{ TotalAmount float64 `bson:"totalAmount"` } `bson:"thisYearSales"`
		ThisMonthSales []struct{ TotalAmount float64 `bson:"totalAmount"` } `bson:"thisMonthSales"`
	}
	if err := cursor.All(ctx, &facets); err != nil {
		return SalesSummary{}, err
	}

	var summary SalesSummary
	if len(facets) > 0 {
		if len(facets[0].TotalSales) > 0 {
			summary.TotalSalesAmount = facets[0].TotalSales[0].TotalAmount
		}
		if len(facets[0].ThisYearSales) > 0 {
			summary.ThisYearSalesAmount = facets[0].ThisYearSales[0].TotalAmount
		}
		if len(facets[0].ThisMonthSales) > 0 {
			summary.ThisMonthSalesAmount = facets[0].ThisMonthSales[0].TotalAmount
		}
	}
	return summary, nil
}

// GetMonthlySalesAmounts charts succeeded payment revenue per month per year
func (q *Queries) GetMonthlySalesAmounts(ctx context.Context) ([]MonthlySales, error) {
	prelude := bson.A{bson.M{"$match": bson.M{"status": "succeeded"}}}
	return q.monthlySales(ctx, prelude, bson.M{"$sum": "$amount"})
}

// GetMonthlySalesCounts charts the number of courses sold per month per year
func (q *Queries) GetMonthlySalesCounts(ctx context.Context) ([]MonthlySales, error) {
	prelude := bson.A{bson.M{"$match": bson.M{"status": "succeeded"}}}
	return q.monthlySales(ctx, prelude, bson.M{"$sum": bson.M{"$size": "$courses"}})
}

// GetInstructorMonthlySalesAmounts charts one instructor's share of each
// payment, unwound to the purchased course level.
func (q *Queries) GetInstructorMonthlySalesAmounts(ctx context.Context, instructorID string) ([]MonthlySales, error) {
	return q.monthlySales(ctx, instructorSalesPrelude(instructorID), bson.M{"$sum": "$courses.price"})
}

// GetInstructorMonthlySalesCounts charts how many of the instructor's courses
// were sold per month per year.
func (q *Queries) GetInstructorMonthlySalesCounts(ctx context.Context, instructorID string) ([]MonthlySales, error) {
	return q.monthlySales(ctx, instructorSalesPrelude(instructorID), bson.M{"$sum": 1})
}

func instructorSalesPrelude(instructorID string) bson.A {
	return bson.A{
		bson.M{"$match": bson.M{"status": "succeeded"}},
		bson.M{"$unwind": "$courses"},
		bson.M{"$match": bson.M{"courses._instructorId": instructorID}},
	}
}

func (q *Queries) monthlySales(ctx context.Context, prelude bson.A, accumulator bson.M) ([]MonthlySales, error) {
	pipeline := append(prelude,
		bson.M{"$group": bson.M{
			"_id": bson.M{
				"year":  bson.M{"$year": "$purchaseDate"},
				"month": bson.M{"$month": "$purchaseDate"},
			},
			"total": accumulator,
		}},
		bson.M{"$sort": bson.M{"_id.year": 1, "_id.month": 1}},
	)

	cursor, err := q.col(colPayments).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID struct {
			Year  int `bson:"year"`
			Month int `bson:"month"`
		} `bson:"_id"`
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	// Fold the sparse (year, month) rows into dense twelve-month series.
	byYear := map[int]int{}
	years := []MonthlySales{}
	for _, row := range rows {
		idx, ok := byYear[row.ID.Year]
		if !ok {
			years = append(years, MonthlySales{Year: row.ID.Year})
			idx = len(years) - 1
			byYear[row.ID.Year] = idx
		}
		years[idx].MonthlyTotal[row.ID.Month-1] = row.Total
		years[idx].YearlyTotal += row.Total
	}
	return years, nil
}

// GetInstructorSalesSummary computes one instructor's lifetime, this-year and
// this-month revenue across all payments that include their courses.
func (q *Queries) GetInstructorSalesSummary(ctx context.Context, instructorID string, now time.Time) (SalesSummary, error) {
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	sumStage := bson.A{
		bson.M{"$group": bson.M{"_id": nil, "totalAmount": bson.M{"$sum": "$courses.price"}}},
	}
	pipeline := append(instructorSalesPrelude(instructorID),
		bson.M{"$facet": bson.M{
			"totalSales": sumStage,
			"thisYearSales": append(bson.A{
				bson.M{"$match": bson.M{"purchaseDate": bson.M{"$gte": yearStart}}},
			}, sumStage...),
			"thisMonthSales": append(bson.A{
				bson.M{"$match": bson.M{"purchaseDate": bson.M{"$gte": monthStart}}},
			}, sumStage...),
		}},
	)

	cursor, err := q.col(colPayments).Aggregate(ctx, pipeline)
	if err != nil {
		return SalesSummary{}, err
	}
	defer cursor.Close(ctx)

	var facets []struct {
		TotalSales     []struct{ TotalAmount float64 `bson:"totalAmount"` } `bson:"totalSales"`
		ThisYearSales  []struct{ TotalAmount float64 `bson:"totalAmount"` } `bson:"thisYearSales"`
		ThisMonthSales []struct{ TotalAmount float64 `bson:"totalAmount"` } `bson:"thisMonthSales"`
	}
	if err := cursor.All(ctx, &facets); err != nil {
		return SalesSummary{}, err
	}

	var summary SalesSummary
	if len(facets) > 0 {
		if len(facets[0].TotalSales) > 0 {
			summary.TotalSalesAmount = facets[0].TotalSales[0].TotalAmount
		}
		if len(facets[0].ThisYearSales) > 0 {
			summary.ThisYearSalesAmount = facets[0].ThisYearSales[0].TotalAmount
		}
		if len(facets[0].ThisMonthSales) > 0 {
			summary.ThisMonthSalesAmount = facets[0].ThisMonthSales[0].TotalAmount
		}
	}
	return summary, nil
}

// CountEnrollments is the lifetime number of course sales
func (q *Queries) CountEnrollments(ctx context.Context) (int64, error) {
	return q.col(colEnrollment).CountDocuments(ctx, bson.M{})
}

// CountEnrollmentsByInstructor counts sales of one instructor's courses
func (q *Queries) CountEnrollmentsByInstructor(ctx context.Context, instructorID string) (int64, error) {
	return q.col(colEnrollment).CountDocuments(ctx, bson.M{"_instructorId": instructorID})
}
