package langscan

// Static vocabulary tables. Detection covers English, Japanese, Chinese
// (Simplified), Korean, Spanish, French, and German. These feed diagnostic
// hints only; no date is ever constructed from them.

// dateKeywords are matched as case-insensitive substrings.
var dateKeywords = []string{
	// English
	"today", "tomorrow", "yesterday", "tonight",
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
	"next week", "this week", "next month", "weekend",

	// Japanese
	"今日", "明日", "明後日", "昨日", "今夜",
	"月曜", "火曜", "水曜", "木曜", "金曜", "土曜", "日曜",
	"来週", "今週", "来月", "週末",

	// Chinese (Simplified)
	"今天", "明天", "后天", "昨天", "今晚",
	"周一", "周二", "周三", "周四", "周五", "周六", "周日", "星期",
	"下周", "这周", "下个月", "月底",

	// Korean
	"오늘", "내일", "모레", "어제",
	"월요일", "화요일", "수요일", "목요일", "금요일", "토요일", "일요일",
	"다음주", "이번주", "다음달", "주말",

	// Spanish
	"hoy", "mañana", "ayer",
	"lunes", "martes", "miércoles", "jueves", "viernes", "sábado", "domingo",
	"semana", "próximo mes",

	// French
	"aujourd'hui", "demain", "hier",
	"lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi", "dimanche",
	"semaine", "mois prochain",

	// German
	"heute", "morgen", "gestern", "übermorgen",
	"montag", "dienstag", "mittwoch", "donnerstag", "freitag", "samstag", "sonntag",
	"nächste woche", "nächsten monat", "wochenende",
}

// hourMarkers are language-specific hour markers for Japanese, Chinese and
// Korean, where clock times are written without am/pm suffixes.
var hourMarkers = []string{
	"時", "午前", "午後", // Japanese
	"点", "上午", "下午", // Chinese
	"시", "오전", "오후", // Korean
}

// titleStopwords are whole tokens dropped during best-effort title extraction.
// Only date/time vocabulary belongs here; ordinary words stay.
var titleStopwords = map[string]struct{}{
	// English
	"today": {}, "tomorrow": {}, "yesterday": {}, "tonight": {},
	"monday": {}, "tuesday": {}, "wednesday": {}, "thursday": {},
	"friday": {}, "saturday": {}, "sunday": {},
	"mon": {}, "tue": {}, "tues": {}, "wed": {}, "thu": {}, "thur": {},
	"thurs": {}, "fri": {}, "sat": {}, "sun": {},
	"am": {}, "pm": {}, "next": {}, "at": {}, "on": {}, "o'clock": {},

	// Japanese
	"今日": {}, "明日": {}, "昨日": {}, "来週": {}, "今週": {}, "来月": {},

	// Chinese
	"今天": {}, "明天": {}, "昨天": {}, "下周": {}, "这周": {}, "下个月": {},

	// Korean
	"오늘": {}, "내일": {}, "어제": {}, "다음주": {}, "이번주": {}, "다음달": {},

	// Spanish
	"hoy": {}, "mañana": {}, "ayer": {}, "próximo": {}, "próxima": {},
	"lunes": {}, "martes": {}, "miércoles": {}, "jueves": {}, "viernes": {},
	"sábado": {}, "domingo": {},

	// French
	"aujourd'hui": {}, "demain": {}, "hier": {}, "prochain": {}, "prochaine": {},
	"lundi": {}, "mardi": {}, "mercredi": {}, "jeudi": {}, "vendredi": {},
	"samedi": {}, "dimanche": {},

	// German
	"heute": {}, "morgen": {}, "gestern": {}, "übermorgen": {},
	"montag": {}, "dienstag": {}, "mittwoch": {}, "donnerstag": {},
	"freitag": {}, "samstag": {}, "sonntag": {}, "nächste": {}, "nächsten": {},
}
