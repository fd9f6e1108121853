package filter

// Dates and times live in separate columns, so a combined timestamp window
// cannot be expressed as a single range: the boundary days need their time
// component checked while interior days stay unconstrained.
//
// AddDateTimeWindow adds one parenthesized disjunction covering the window
// (lower, upper) measured as (date, time) pairs:
//
//	direct date range
//	OR (lower boundary day OR (upper boundary day OR same-day window))
//
// A boundary branch whose date bound is absent contributes FALSE instead
// of vanishing, so an open side never widens the disjunction by accident.
// When the date range is entirely absent the window degrades to a plain
// strict range on the time column, and when both ranges are absent nothing
// is added at all.
func (f *Filter) AddDateTimeWindow(dateCol, timeCol string, dateRange, timeRange Range) *Filter {
	if dateRange.IsEmpty() && timeRange.IsEmpty() {
		return f
	}
	if dateRange.IsEmpty() {
		return f.AddRange(timeCol, timeRange)
	}

	return f.AddOr(
		func(direct *Filter) {
			direct.AddRange(dateCol, dateRange)
		},
		func(branches *Filter) {
			branches.AddOr(
				func(lower *Filter) {
					boundaryDay(lower, dateCol, timeCol, dateRange.Lower, timeRange.Lower, false)
				},
				func(rest *Filter) {
					rest.AddOr(
						func(upper *Filter) {
							boundaryDay(upper, dateCol, timeCol, dateRange.Upper, timeRange.Upper, true)
						},
						func(sameDay *Filter) {
							sameDayWindow(sameDay, dateCol, timeCol, dateRange, timeRange)
						},
					)
				},
			)
		},
	)
}

// boundaryDay handles the day a window bound falls on: either the date is
// exactly the bound and the time clears the bound's time cutoff, or the
// date is strictly past the bound. With no date bound the branch is FALSE.
func boundaryDay(f *Filter, dateCol, timeCol string, dateBound, timeBound *string, upperSide bool) {
	if dateBound == nil {
		f.AddStatic("FALSE")
		return
	}
	timeSide := Range{Lower: timeBound}
	dateSide := Range{Lower: dateBound}
	if upperSide {
		timeSide = Range{Upper: timeBound}
		dateSide = Range{Upper: dateBound}
	}
	f.AddOr(
		func(onDay *Filter) {
			onDay.AddEquality(dateCol, *dateBound)
			onDay.AddRange(timeCol, timeSide)
		},
		func(pastDay *Filter) {
			pastDay.AddRange(dateCol, dateSide)
		},
	)
}

// sameDayWindow covers a window that opens and closes without interior
// days: the date sits between both bounds and the time within both time
// bounds. It requires both date bounds, contributing FALSE otherwise.
func sameDayWindow(f *Filter, dateCol, timeCol string, dateRange, timeRange Range) {
	if dateRange.Lower == nil || dateRange.Upper == nil {
		f.AddStatic("FALSE")
		return
	}
	f.AddRange(dateCol, dateRange)
	f.AddRange(timeCol, timeRange)
}
