package sljson

import "github.com/aisa-it/slatemd/sltypes"

// getDataString безопасно извлекает строковое значение из data ноды.
func getDataString(data map[string]any, key string) string {
	if data == nil {
		return ""
	}
	val, ok := data[key]
	if !ok {
		return ""
	}
	str, ok := val.(string)
	if !ok {
		return ""
	}
	return str
}

// getDataInt безопасно извлекает целочисленное значение из data ноды.
func getDataInt(data map[string]any, key string) int {
	if data == nil {
		return 0
	}
	val, ok := data[key]
	if !ok {
		return 0
	}

	// Из JSON числа приходят как float64
	if f, ok := val.(float64); ok {
		return int(f)
	}

	if i, ok := val.(int); ok {
		return i
	}

	return 0
}

// getDataBool безопасно извлекает булево значение из data ноды.
func getDataBool(data map[string]any, key string) bool {
	if data == nil {
		return false
	}
	val, ok := data[key]
	if !ok {
		return false
	}
	b, ok := val.(bool)
	if !ok {
		return false
	}
	return b
}

// parseAlign конвертирует строковое значение выравнивания в TableAlign.
func parseAlign(align string) sltypes.TableAlign {
	switch align {
	case "left":
		return sltypes.LeftAlign
	case "center":
		return sltypes.CenterAlign
	case "right":
		return sltypes.RightAlign
	}
	return sltypes.NoAlign
}

// alignString возвращает строковое значение выравнивания для data ноды.
// Для NoAlign возвращает пустую строку: ключ align в этом случае не пишется.
func alignString(align sltypes.TableAlign) string {
	switch align {
	case sltypes.LeftAlign:
		return "left"
	case sltypes.CenterAlign:
		return "center"
	case sltypes.RightAlign:
		return "right"
	}
	return ""
}
