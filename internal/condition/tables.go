package condition

import (
	"github.com/ppiankov/entitlement/internal/model"
	"github.com/ppiankov/entitlement/internal/predicate"
)

// Validation condition keys
const (
	KeyLowPointsOverrideUnspecified       = "LOW_POINTS_OVERRIDE_UNSPECIFIED"
	KeyLowPointsOverrideDoesNotApply      = "LOW_POINTS_OVERRIDE_DOES_NOT_APPLY"
	KeyLowPointsOverrideAppliesRiskUnset  = "LOW_POINTS_OVERRIDE_APPLIES_RISK_UNSPECIFIED"
	KeyLowPointsOverrideAppliesNoRisk     = "LOW_POINTS_OVERRIDE_APPLIES_RISK_DOES_NOT_APPLY"
	KeyLowPointsOverrideAppliesRisk       = "LOW_POINTS_OVERRIDE_APPLIES_RISK_APPLIES"
	KeyLowPointsSupportGroupOnlyRiskUnset = "LOW_POINTS_SUPPORT_GROUP_ONLY_RISK_UNSPECIFIED"
	KeyLowPointsSupportGroupOnlyNoRisk    = "LOW_POINTS_SUPPORT_GROUP_ONLY_RISK_DOES_NOT_APPLY"
	KeyLowPointsSupportGroupOnlyRisk      = "LOW_POINTS_SUPPORT_GROUP_ONLY_RISK_APPLIES"
	KeyHighPointsRiskUnset                = "HIGH_POINTS_RISK_UNSPECIFIED"
	KeyHighPointsNoRisk                   = "HIGH_POINTS_RISK_DOES_NOT_APPLY"
	KeyHighPointsRisk                     = "HIGH_POINTS_RISK_APPLIES"
	KeyNonWCAAppeal                       = "NON_WCA_APPEAL"
)

// Outcome condition keys
const (
	KeyRefusedNonSupportGroupOnly         = "REFUSED_NON_SUPPORT_GROUP_ONLY"
	KeyRefusedSupportGroupOnlyLowPoints   = "REFUSED_SUPPORT_GROUP_ONLY_LOW_POINTS"
	KeyRefusedSupportGroupOnlyHighPoints  = "REFUSED_SUPPORT_GROUP_ONLY_HIGH_POINTS"
	KeyAllowedNonSupportGroupOnlyHigh     = "ALLOWED_NON_SUPPORT_GROUP_ONLY_HIGH_POINTS"
	KeyAllowedNonSupportGroupOnlyLow      = "ALLOWED_NON_SUPPORT_GROUP_ONLY_LOW_POINTS"
	KeyAllowedSupportGroupOnlySelected    = "ALLOWED_SUPPORT_GROUP_ONLY_SELECTED"
	KeyAllowedSupportGroupOnlyNotSelected = "ALLOWED_SUPPORT_GROUP_ONLY_NOT_SELECTED"
	KeyAllowedSupportGroupOnlyUnspecified = "ALLOWED_SUPPORT_GROUP_ONLY_UNSPECIFIED"
	KeyNonWCAAppealAllowed                = "NON_WCA_APPEAL_ALLOWED"
	KeyNonWCAAppealRefused                = "NON_WCA_APPEAL_REFUSED"
)

var (
	below     = predicate.Below(predicate.Threshold)
	above     = predicate.AtOrAbove(predicate.Threshold)
	anyPoints = predicate.AnyPoints()
)

// validationTable is the points and activities catalog checked before a
// notice is previewed
func validationTable(v Vocabulary) []Condition {
	yes, no, unset := predicate.IsYes(), predicate.IsNo(), predicate.IsUnspecified()
	notYes := predicate.IsNotYes()
	o8, o9 := v.Override8ID, v.Override9ID
	skipped := "LOW_POINTS_" + v.PointsScheduleID + "_AND_REG_29_SKIPPED_" + o9

	return []Condition{
		{
			ID:            "LOW_POINTS_" + o8 + "_UNSPECIFIED",
			Key:           KeyLowPointsOverrideUnspecified,
			Points:        below,
			DisplayPoints: true,
			Primary:       []predicate.Criterion{v.wca(yes, false), v.sgo(notYes, true), v.s8(unset, false)},
			Validations:   []predicate.Criterion{v.s8(predicate.IsSpecified(), true)},
		},
		{
			ID:            "LOW_POINTS_" + o8 + "_DOES_NOT_APPLY",
			Key:           KeyLowPointsOverrideDoesNotApply,
			Points:        below,
			DisplayPoints: true,
			Primary:       []predicate.Criterion{v.wca(yes, false), v.sgo(notYes, true), v.s8(no, true)},
			Validations:   []predicate.Criterion{v.s9(unset, true), v.highTier(predicate.IsListUnspecified())},
			Award:         model.NoAward,
		},
		{
			ID:            "LOW_POINTS_" + o8 + "_DOES_APPLY_" + o9 + "_UNSPECIFIED_NON_SUPPORT_GROUP_ONLY",
			Key:           KeyLowPointsOverrideAppliesRiskUnset,
			Points:        below,
			DisplayPoints: true,
			Primary:       []predicate.Criterion{v.wca(yes, false), v.sgo(notYes, true), v.s8(yes, true), v.s9(unset, true)},
			Validations:   []predicate.Criterion{v.highTier(predicate.IsNotEmpty())},
			Award:         model.HigherRate,
		},
		{
			ID:            "LOW_POINTS_" + o8 + "_DOES_APPLY_" + o9 + "_DOES_NOT_APPLY_NON_SUPPORT_GROUP_ONLY",
			Key:           KeyLowPointsOverrideAppliesNoRisk,
			Points:        below,
			DisplayPoints: true,
			Primary:       []predicate.Criterion{v.wca(yes, false), v.sgo(notYes, true), v.s8(yes, true), v.s9(no, true)},
			Validations:   []predicate.Criterion{v.highTier(predicate.IsEmpty())},
			Award:         model.LowerRate,
		},
		{
			ID:            "LOW_POINTS_" + o8 + "_DOES_APPLY_" + o9 + "_DOES_APPLY_NON_SUPPORT_GROUP_ONLY",
			Key:           KeyLowPointsOverrideAppliesRisk,
			Points:        below,
			DisplayPoints: true,
			Primary:       []predicate.Criterion{v.wca(yes, false), v.sgo(notYes, true), v.s8(yes, true), v.s9(yes, true)},
			Validations:   []predicate.Criterion{v.highTier(predicate.IsEmpty())},
			Award:         model.HigherRate,
		},
		{
			ID:          skipped + "_UNSPECIFIED_SUPPORT_GROUP_ONLY",
			Key:         KeyLowPointsSupportGroupOnlyRiskUnset,
			Points:      below,
			Primary:     []predicate.Criterion{v.wca(yes, false), v.sgo(yes, true), v.s9(unset, true)},
			Validations: []predicate.Criterion{v.highTier(predicate.IsNotEmpty()), v.s8(unset, true)},
			Award:       model.HigherRate,
		},
		{
			ID:          skipped + "_DOES_NOT_APPLY_SUPPORT_GROUP_ONLY",
			Key:         KeyLowPointsSupportGroupOnlyNoRisk,
			Points:      below,
			Primary:     []predicate.Criterion{v.wca(yes, false), v.sgo(yes, true), v.s9(no, true)},
			Validations: []predicate.Criterion{v.highTier(predicate.IsEmpty()), v.s8(unset, true)},
			Award:       model.LowerRate,
		},
		{
			ID:          skipped + "_DOES_APPLY_SUPPORT_GROUP_ONLY",
			Key:         KeyLowPointsSupportGroupOnlyRisk,
			Points:      below,
			Primary:     []predicate.Criterion{v.wca(yes, false), v.sgo(yes, true), v.s9(yes, true)},
			Validations: []predicate.Criterion{v.highTier(predicate.IsEmpty()), v.s8(unset, true)},
			Award:       model.HigherRate,
		},
		{
			ID:            "HIGH_POINTS_" + o9 + "_UNSPECIFIED",
			Key:           KeyHighPointsRiskUnset,
			Points:        above,
			DisplayPoints: true,
			Primary:       []predicate.Criterion{v.wca(yes, false), v.s9(unset, true)},
			Validations:   []predicate.Criterion{v.s8(unset, true), v.sgo(notYes, true), v.highTier(predicate.IsNotEmpty())},
			Award:         model.HigherRate,
		},
		{
			ID:            "HIGH_POINTS_" + o9 + "_DOES_NOT_APPLY",
			Key:           KeyHighPointsNoRisk,
			Points:        above,
			DisplayPoints: true,
			Primary:       []predicate.Criterion{v.wca(yes, false), v.s9(no, true)},
			Validations:   []predicate.Criterion{v.s8(unset, true), v.sgo(notYes, true), v.highTier(predicate.IsEmpty())},
			Award:         model.LowerRate,
		},
		{
			ID:            "HIGH_POINTS_" + o9 + "_DOES_APPLY",
			Key:           KeyHighPointsRisk,
			Points:        above,
			DisplayPoints: true,
			Primary:       []predicate.Criterion{v.wca(yes, false), v.s9(yes, true)},
			Validations:   []predicate.Criterion{v.s8(unset, true), v.sgo(notYes, true), v.highTier(predicate.IsEmpty())},
			Award:         model.HigherRate,
		},
		{
			ID:          "NON_WCA_APPEAL",
			Key:         KeyNonWCAAppeal,
			Points:      anyPoints,
			Primary:     []predicate.Criterion{v.wca(no, false)},
			Validations: []predicate.Criterion{v.reassess(unset)},
		},
	}
}

// outcomeTable is the allowed or refused catalog checked when a decision is
// submitted
func outcomeTable(v Vocabulary) []Condition {
	yes, no, unset := predicate.IsYes(), predicate.IsNo(), predicate.IsUnspecified()
	notYes := predicate.IsNotYes()
	allowed, refused := predicate.OnOutcome(predicate.IsAllowed()), predicate.OnOutcome(predicate.IsRefused())
	sgoOnly := "ALLOWED_SUPPORT_GROUP_ONLY_" + v.HighTierID

	return []Condition{
		{
			ID:               KeyRefusedNonSupportGroupOnly,
			Key:              KeyRefusedNonSupportGroupOnly,
			Points:           anyPoints,
			DisplayPoints:    true,
			Primary:          []predicate.Criterion{refused, v.wca(yes, false), v.sgo(notYes, true)},
			ValidationPoints: below,
			Validations:      []predicate.Criterion{v.s8(no, true), v.highTier(predicate.IsListUnspecified()), v.sgo(no, false), v.s9(unset, true)},
		},
		{
			ID:            KeyRefusedSupportGroupOnlyLowPoints,
			Key:           KeyRefusedSupportGroupOnlyLowPoints,
			Points:        below,
			DisplayPoints: true,
			Primary:       []predicate.Criterion{refused, v.wca(yes, false), v.sgo(yes, true)},
			Validations:   []predicate.Criterion{v.s8(unset, true), v.highTier(predicate.IsEmpty()), v.s9(no, true)},
		},
		{
			ID:            KeyRefusedSupportGroupOnlyHighPoints,
			Key:           KeyRefusedSupportGroupOnlyHighPoints,
			Points:        above,
			DisplayPoints: true,
			Primary:       []predicate.Criterion{refused, v.wca(yes, false), v.sgo(yes, true)},
			Validations:   []predicate.Criterion{v.s8(unset, true), v.highTier(predicate.IsEmpty()), v.s9(no, true)},
		},
		{
			ID:            KeyAllowedNonSupportGroupOnlyHigh,
			Key:           KeyAllowedNonSupportGroupOnlyHigh,
			Points:        above,
			DisplayPoints: true,
			Primary:       []predicate.Criterion{allowed, v.wca(yes, false), v.sgo(notYes, true)},
			Validations:   []predicate.Criterion{v.sgo(no, false)},
		},
		{
			ID:            KeyAllowedNonSupportGroupOnlyLow,
			Key:           KeyAllowedNonSupportGroupOnlyLow,
			Points:        below,
			DisplayPoints: true,
			Primary:       []predicate.Criterion{allowed, v.wca(yes, false), v.sgo(notYes, true)},
			Validations:   []predicate.Criterion{v.sgo(no, false), v.s8(yes, true)},
		},
		{
			ID:            sgoOnly + "_SELECTED",
			Key:           KeyAllowedSupportGroupOnlySelected,
			Points:        anyPoints,
			DisplayPoints: true,
			Primary:       []predicate.Criterion{allowed, v.wca(yes, false), v.sgo(yes, true), v.highTier(predicate.IsNotEmpty())},
			Validations:   []predicate.Criterion{v.s8(unset, true)},
		},
		{
			ID:            sgoOnly + "_NOT_SELECTED",
			Key:           KeyAllowedSupportGroupOnlyNotSelected,
			Points:        anyPoints,
			DisplayPoints: true,
			Primary:       []predicate.Criterion{allowed, v.wca(yes, false), v.sgo(yes, true), v.highTier(predicate.IsEmpty())},
			Validations:   []predicate.Criterion{v.s8(unset, true), v.s9(yes, true)},
		},
		{
			ID:            sgoOnly + "_UNSPECIFIED",
			Key:           KeyAllowedSupportGroupOnlyUnspecified,
			Points:        anyPoints,
			DisplayPoints: true,
			Primary:       []predicate.Criterion{allowed, v.wca(yes, true), v.sgo(yes, true), v.highTier(predicate.IsListUnspecified())},
			Validations:   []predicate.Criterion{v.s8(unset, true), v.s9(yes, true)},
		},
		{
			ID:            KeyNonWCAAppealAllowed,
			Key:           KeyNonWCAAppealAllowed,
			Points:        anyPoints,
			DisplayPoints: true,
			Primary:       []predicate.Criterion{allowed, v.wca(no, true)},
			Validations:   []predicate.Criterion{v.reassess(unset)},
		},
		{
			ID:            KeyNonWCAAppealRefused,
			Key:           KeyNonWCAAppealRefused,
			Points:        anyPoints,
			DisplayPoints: true,
			Primary:       []predicate.Criterion{refused, v.wca(no, true)},
			Validations:   []predicate.Criterion{v.reassess(unset)},
		},
	}
}
