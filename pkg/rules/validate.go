package rules

import (
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// Validation rule kinds.
const (
	RuleMinLength = "minLength"
	RuleMaxLength = "maxLength"
	RuleMinValue  = "minValue"
	RuleMaxValue  = "maxValue"
	RuleRegex     = "regex"
	RuleEmail     = "email"
	RuleURL       = "url"
	RulePhone     = "phone"
)

var (
	emailPattern = regexp.MustCompile(`^[\w-\.]+@([\w-]+\.)+[\w-]{2,}$`)
	phonePattern = regexp.MustCompile(`^[0-9+\-\s()]+$`)
)

// Validate runs the rules in order against the candidate value and returns
// the first failing rule's localized message, or "" when all pass.
// Empty/whitespace-only values are not validated at all; required-ness is
// a definition-level concern, not a rule.
func Validate(validationRules []ValidationRule, value string, lang string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}

	for _, rule := range validationRules {
		if !check(rule, value) {
			return messageFor(rule, lang)
		}
	}
	return ""
}

func check(rule ValidationRule, value string) bool {
	switch rule.Type {
	case RuleMinLength:
		bound, ok := asFloat(rule.Value)
		if !ok {
			return true
		}
		return float64(utf8.RuneCountInString(value)) >= bound
	case RuleMaxLength:
		bound, ok := asFloat(rule.Value)
		if !ok {
			return true
		}
		return float64(utf8.RuneCountInString(value)) <= bound
	case RuleMinValue:
		bound, ok := asFloat(rule.Value)
		if !ok {
			return true
		}
		// Non-numeric input parses to NaN; NaN comparisons are always
		// false, so the rule never fails on non-numeric values.
		return !(numeric(value) < bound)
	case RuleMaxValue:
		bound, ok := asFloat(rule.Value)
		if !ok {
			return true
		}
		return !(numeric(value) > bound)
	case RuleRegex:
		pattern := asString(rule.Value)
		re, err := regexp.Compile(pattern)
		if err != nil {
			zap.L().Warn("skipping uncompilable regex rule",
				zap.String("pattern", pattern), zap.Error(err))
			return true
		}
		return re.MatchString(value)
	case RuleEmail:
		return emailPattern.MatchString(value)
	case RuleURL:
		u, err := url.Parse(value)
		return err == nil && u.IsAbs() && u.Host != ""
	case RulePhone:
		return phonePattern.MatchString(value) && len(value) >= 10
	default:
		return true // unknown rule kind: fail open
	}
}

func numeric(value string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

func messageFor(rule ValidationRule, lang string) string {
	if lang == "ar" && rule.ErrorMessageAr != "" {
		return rule.ErrorMessageAr
	}
	if rule.ErrorMessageEn != "" {
		return rule.ErrorMessageEn
	}
	return builtinMessage(rule.Type, lang)
}

var builtinMessagesEn = map[string]string{
	RuleMinLength: "Value is too short",
	RuleMaxLength: "Value is too long",
	RuleMinValue:  "Value is too small",
	RuleMaxValue:  "Value is too large",
	RuleRegex:     "Value has an invalid format",
	RuleEmail:     "Invalid email address",
	RuleURL:       "Invalid URL",
	RulePhone:     "Invalid phone number",
}

var builtinMessagesAr = map[string]string{
	RuleMinLength: "القيمة قصيرة جداً",
	RuleMaxLength: "القيمة طويلة جداً",
	RuleMinValue:  "القيمة صغيرة جداً",
	RuleMaxValue:  "القيمة كبيرة جداً",
	RuleRegex:     "تنسيق القيمة غير صالح",
	RuleEmail:     "البريد الإلكتروني غير صالح",
	RuleURL:       "الرابط غير صالح",
	RulePhone:     "رقم الهاتف غير صالح",
}

func builtinMessage(kind string, lang string) string {
	if lang == "ar" {
		if msg, ok := builtinMessagesAr[kind]; ok {
			return msg
		}
	}
	if msg, ok := builtinMessagesEn[kind]; ok {
		return msg
	}
	return "Invalid value"
}
