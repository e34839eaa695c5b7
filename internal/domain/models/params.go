package models

// ParameterSet — неупорядоченное отображение имени параметра в значение.
// Значения хранятся строками без приведения типов: числа из таблицы
// передаются как есть.
type ParameterSet map[string]string

// Clone возвращает копию набора для защиты от внешнего изменения.
func (p ParameterSet) Clone() ParameterSet {
	if p == nil {
		return ParameterSet{}
	}
	out := make(ParameterSet, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// TemplateEntry — одна строка шаблона экспорта: категория, имя параметра
// и заявленный допустимый диапазон. Диапазон — справочная информация для
// оператора, этот слой его не проверяет.
type TemplateEntry struct {
	Category string
	Name     string
	Range    string
}
