package model

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DateLayout используется для дат прогноза
const DateLayout = "2006-01-02"

// FileTimestampLayout используется в именах выходных файлов
const FileTimestampLayout = "2006-01-02_15-04-05"

// MonthToNumber сопоставляет сокращенные названия месяцев на русском с их номерами
var MonthToNumber = map[string]string{
	"янв": "01",
	"фев": "02",
	"мар": "03",
	"апр": "04",
	"май": "05",
	"июн": "06",
	"июл": "07",
	"авг": "08",
	"сен": "09",
	"окт": "10",
	"ноя": "11",
	"дек": "12",
}

// MonthNumber возвращает номер месяца "01".."12" по сокращению без учета регистра
func MonthNumber(token string) (string, bool) {
	// Caser хранит состояние, поэтому создается на каждый вызов
	number, ok := MonthToNumber[cases.Lower(language.Russian).String(token)]
	return number, ok
}
