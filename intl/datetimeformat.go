package intl

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Date and time styles mirroring the host option vocabulary.
const (
	styleFull   = "full"
	styleLong   = "long"
	styleMedium = "medium"
	styleShort  = "short"
)

// DateTimeFormat formats an instant for a language. Output is a pure function
// of the constructor arguments and the formatted instant; nothing is read
// from the clock or any other hidden state.
type DateTimeFormat struct {
	rules     *dateTimeRules
	loc       *time.Location
	dateStyle string
	timeStyle string
	hour12    bool
}

// NewDateTimeFormat constructs a date/time formatter from positional
// arguments [languageTag, optionsObject]. Recognized options: dateStyle,
// timeStyle (full|long|medium|short), timeZone (IANA name, default UTC) and
// hour12. With neither style set, only the numeric date is produced.
func NewDateTimeFormat(_ context.Context, args []any) (*DateTimeFormat, error) {
	tag, err := tagArg(args, 0)
	if err != nil {
		return nil, err
	}

	options, err := optionalObjectArg(args, 1)
	if err != nil {
		return nil, err
	}

	rules := matchDateTimeRules(tag)

	d := &DateTimeFormat{
		rules:  rules,
		loc:    time.UTC,
		hour12: !rules.use24Hour,
	}

	if options != nil {
		if d.dateStyle, err = styleOption(options, "dateStyle"); err != nil {
			return nil, err
		}

		if d.timeStyle, err = styleOption(options, "timeStyle"); err != nil {
			return nil, err
		}

		if zone, ok := optString(options, "timeZone"); ok {
			loc, zoneErr := time.LoadLocation(zone)
			if zoneErr != nil {
				return nil, fmt.Errorf("%w: invalid time zone %q: %v", ErrBadArgument, zone, zoneErr)
			}
			d.loc = loc
		}

		if hour12, ok := optBool(options, "hour12"); ok {
			d.hour12 = hour12
		}
	}

	return d, nil
}

// Invoke answers the "format" method with one argument holding milliseconds
// since the Unix epoch.
func (d *DateTimeFormat) Invoke(_ context.Context, method string, args []any) (string, error) {
	if method != "format" {
		return "", fmt.Errorf("%w: DateTimeFormat.%s", ErrUnknownMethod, method)
	}

	millis, err := numberArg(args, 0)
	if err != nil {
		return "", err
	}

	t := time.UnixMilli(int64(millis)).In(d.loc)

	var parts []string

	switch {
	case d.dateStyle == "" && d.timeStyle == "":
		parts = append(parts, d.rules.render(d.rules.defaultDate, t, d.hour12))
	default:
		if d.dateStyle != "" {
			parts = append(parts, d.rules.render(d.rules.date[d.dateStyle], t, d.hour12))
		}
		if d.timeStyle != "" {
			parts = append(parts, d.rules.render(d.rules.time[d.timeStyle], t, d.hour12))
		}
	}

	return strings.Join(parts, d.rules.glue), nil
}

func styleOption(options map[string]any, key string) (string, error) {
	style, ok := optString(options, key)
	if !ok {
		return "", nil
	}

	switch style {
	case styleFull, styleLong, styleMedium, styleShort:
		return style, nil
	default:
		return "", fmt.Errorf("%w: unsupported %s %q", ErrBadArgument, key, style)
	}
}

// dateTimeRules holds the locale pattern tables. Patterns use placeholders
// resolved by render; 2-suffixed placeholders are zero padded.
type dateTimeRules struct {
	defaultDate string
	date        map[string]string
	time        map[string]string
	months      [12]string
	monthsShort [12]string
	weekdays    [7]string
	dayPeriods  [2]string
	use24Hour   bool
	glue        string
}

func (r *dateTimeRules) render(pattern string, t time.Time, hour12 bool) string {
	hour := t.Hour()
	dayPeriod := ""

	if hour12 {
		dayPeriod = r.dayPeriods[0]
		if hour >= 12 {
			dayPeriod = r.dayPeriods[1]
		}

		hour %= 12
		if hour == 0 {
			hour = 12
		}
	}

	out := strings.NewReplacer(
		"{year}", strconv.Itoa(t.Year()),
		"{year2}", fmt.Sprintf("%02d", t.Year()%100),
		"{month}", strconv.Itoa(int(t.Month())),
		"{month2}", fmt.Sprintf("%02d", int(t.Month())),
		"{monthName}", r.months[t.Month()-1],
		"{monthShort}", r.monthsShort[t.Month()-1],
		"{day}", strconv.Itoa(t.Day()),
		"{day2}", fmt.Sprintf("%02d", t.Day()),
		"{weekday}", r.weekdays[t.Weekday()],
		"{hour}", strconv.Itoa(hour),
		"{hour2}", fmt.Sprintf("%02d", hour),
		"{minute2}", fmt.Sprintf("%02d", t.Minute()),
		"{second2}", fmt.Sprintf("%02d", t.Second()),
		"{dayPeriod}", dayPeriod,
		"{tz}", t.Format("MST"),
	).Replace(pattern)

	// A suppressed day period leaves stray spacing behind; collapse it.
	return strings.Join(strings.Fields(out), " ")
}

//nolint:gochecknoglobals // static locale tables shared by every formatter
var (
	englishMonths      = [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"}
	englishMonthsShort = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	englishWeekdays    = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

	dateTimeRuleTable = []*dateTimeRules{
		{ // en (US conventions)
			defaultDate: "{month}/{day}/{year}",
			date: map[string]string{
				styleFull:   "{weekday}, {monthName} {day}, {year}",
				styleLong:   "{monthName} {day}, {year}",
				styleMedium: "{monthShort} {day}, {year}",
				styleShort:  "{month}/{day}/{year2}",
			},
			time: map[string]string{
				styleFull:   "{hour}:{minute2}:{second2} {dayPeriod} {tz}",
				styleLong:   "{hour}:{minute2}:{second2} {dayPeriod} {tz}",
				styleMedium: "{hour}:{minute2}:{second2} {dayPeriod}",
				styleShort:  "{hour}:{minute2} {dayPeriod}",
			},
			months:      englishMonths,
			monthsShort: englishMonthsShort,
			weekdays:    englishWeekdays,
			dayPeriods:  [2]string{"AM", "PM"},
			glue:        ", ",
		},
		{ // en-GB
			defaultDate: "{day}/{month}/{year}",
			date: map[string]string{
				styleFull:   "{weekday} {day} {monthName} {year}",
				styleLong:   "{day} {monthName} {year}",
				styleMedium: "{day} {monthShort} {year}",
				styleShort:  "{day2}/{month2}/{year}",
			},
			time: map[string]string{
				styleFull:   "{hour2}:{minute2}:{second2} {tz}",
				styleLong:   "{hour2}:{minute2}:{second2} {tz}",
				styleMedium: "{hour2}:{minute2}:{second2}",
				styleShort:  "{hour2}:{minute2}",
			},
			months:      englishMonths,
			monthsShort: englishMonthsShort,
			weekdays:    englishWeekdays,
			dayPeriods:  [2]string{"am", "pm"},
			use24Hour:   true,
			glue:        ", ",
		},
		{ // de
			defaultDate: "{day}.{month}.{year}",
			date: map[string]string{
				styleFull:   "{weekday}, {day}. {monthName} {year}",
				styleLong:   "{day}. {monthName} {year}",
				styleMedium: "{day2}.{month2}.{year}",
				styleShort:  "{day2}.{month2}.{year2}",
			},
			time: map[string]string{
				styleFull:   "{hour2}:{minute2}:{second2} {tz}",
				styleLong:   "{hour2}:{minute2}:{second2} {tz}",
				styleMedium: "{hour2}:{minute2}:{second2}",
				styleShort:  "{hour2}:{minute2}",
			},
			months:      [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"},
			monthsShort: [12]string{"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni", "Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez."},
			weekdays:    [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
			dayPeriods:  [2]string{"AM", "PM"},
			use24Hour:   true,
			glue:        ", ",
		},
		{ // fr
			defaultDate: "{day2}/{month2}/{year}",
			date: map[string]string{
				styleFull:   "{weekday} {day} {monthName} {year}",
				styleLong:   "{day} {monthName} {year}",
				styleMedium: "{day} {monthShort} {year}",
				styleShort:  "{day2}/{month2}/{year}",
			},
			time: map[string]string{
				styleFull:   "{hour2}:{minute2}:{second2} {tz}",
				styleLong:   "{hour2}:{minute2}:{second2} {tz}",
				styleMedium: "{hour2}:{minute2}:{second2}",
				styleShort:  "{hour2}:{minute2}",
			},
			months:      [12]string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
			monthsShort: [12]string{"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
			weekdays:    [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
			dayPeriods:  [2]string{"AM", "PM"},
			use24Hour:   true,
			glue:        ", ",
		},
		{ // es
			defaultDate: "{day}/{month}/{year}",
			date: map[string]string{
				styleFull:   "{weekday}, {day} de {monthName} de {year}",
				styleLong:   "{day} de {monthName} de {year}",
				styleMedium: "{day} {monthShort} {year}",
				styleShort:  "{day}/{month}/{year2}",
			},
			time: map[string]string{
				styleFull:   "{hour2}:{minute2}:{second2} {tz}",
				styleLong:   "{hour2}:{minute2}:{second2} {tz}",
				styleMedium: "{hour2}:{minute2}:{second2}",
				styleShort:  "{hour2}:{minute2}",
			},
			months:      [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
			monthsShort: [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
			weekdays:    [7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
			dayPeriods:  [2]string{"a.m.", "p.m."},
			use24Hour:   true,
			glue:        ", ",
		},
		{ // sw
			defaultDate: "{day}/{month}/{year}",
			date: map[string]string{
				styleFull:   "{weekday}, {day} {monthName} {year}",
				styleLong:   "{day} {monthName} {year}",
				styleMedium: "{day} {monthShort} {year}",
				styleShort:  "{day2}/{month2}/{year}",
			},
			time: map[string]string{
				styleFull:   "{hour2}:{minute2}:{second2} {tz}",
				styleLong:   "{hour2}:{minute2}:{second2} {tz}",
				styleMedium: "{hour2}:{minute2}:{second2}",
				styleShort:  "{hour2}:{minute2}",
			},
			months:      [12]string{"Januari", "Februari", "Machi", "Aprili", "Mei", "Juni", "Julai", "Agosti", "Septemba", "Oktoba", "Novemba", "Desemba"},
			monthsShort: [12]string{"Jan", "Feb", "Mac", "Apr", "Mei", "Jun", "Jul", "Ago", "Sep", "Okt", "Nov", "Des"},
			weekdays:    [7]string{"Jumapili", "Jumatatu", "Jumanne", "Jumatano", "Alhamisi", "Ijumaa", "Jumamosi"},
			dayPeriods:  [2]string{"AM", "PM"},
			use24Hour:   true,
			glue:        ", ",
		},
		{ // ja
			defaultDate: "{year}/{month}/{day}",
			date: map[string]string{
				styleFull:   "{year}年{month}月{day}日{weekday}",
				styleLong:   "{year}年{month}月{day}日",
				styleMedium: "{year}/{month2}/{day2}",
				styleShort:  "{year}/{month2}/{day2}",
			},
			time: map[string]string{
				styleFull:   "{hour}時{minute2}分{second2}秒 {tz}",
				styleLong:   "{hour}:{minute2}:{second2} {tz}",
				styleMedium: "{hour}:{minute2}:{second2}",
				styleShort:  "{hour}:{minute2}",
			},
			months:      [12]string{"1月", "2月", "3月", "4月", "5月", "6月", "7月", "8月", "9月", "10月", "11月", "12月"},
			monthsShort: [12]string{"1月", "2月", "3月", "4月", "5月", "6月", "7月", "8月", "9月", "10月", "11月", "12月"},
			weekdays:    [7]string{"日曜日", "月曜日", "火曜日", "水曜日", "木曜日", "金曜日", "土曜日"},
			dayPeriods:  [2]string{"午前", "午後"},
			use24Hour:   true,
			glue:        " ",
		},
	}

	dateTimeMatcher = language.NewMatcher([]language.Tag{
		language.English, // first entry is also the fallback
		language.BritishEnglish,
		language.German,
		language.French,
		language.Spanish,
		language.Swahili,
		language.Japanese,
	})
)

func matchDateTimeRules(tag language.Tag) *dateTimeRules {
	_, index, _ := dateTimeMatcher.Match(tag)
	return dateTimeRuleTable[index]
}
