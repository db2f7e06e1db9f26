// Package model содержит доменные типы скрейпера погоды.
//
// Группа: BASE - Базовые компоненты
// Содержит: Optional, WeatherRecord, таблицу месяцев
package model

// NullText выводится вместо отсутствующего значения
const NullText = "null"

// Optional представляет значение поля, которое может отсутствовать на странице.
// Отсутствие значения не является ошибкой.
type Optional struct {
	value string
	ok    bool
}

// Some создает Optional со значением
func Some(value string) Optional {
	return Optional{value: value, ok: true}
}

// None создает пустой Optional
func None() Optional {
	return Optional{}
}

// Get возвращает значение и признак его наличия
func (o Optional) Get() (string, bool) {
	return o.value, o.ok
}

// IsSome сообщает, есть ли значение
func (o Optional) IsSome() bool {
	return o.ok
}

// OrElse возвращает значение или def, если его нет
func (o Optional) OrElse(def string) string {
	if !o.ok {
		return def
	}
	return o.value
}

// String возвращает значение или NullText
func (o Optional) String() string {
	return o.OrElse(NullText)
}
