// Пакет markdown предоставляет сериализацию дерева документа редактора в
// Markdown-текст и обратный разбор Markdown в структуры данных пакета sltypes.
//
// Основные возможности:
//   - Рекурсивный рендеринг блоков, inline-элементов и текстовых фрагментов.
//   - Пользовательские правила сериализации, проверяемые до встроенных.
//   - Точный вывод синтаксиса таблиц, вложенных списков и форматирования.
//   - Разбор GFM Markdown через goldmark в дерево документа.
package markdown

import "errors"

// Rule - пользовательское правило сериализации. Принимает узел документа и
// уже отрендеренный текст его дочерних узлов, возвращает результат и признак
// того, что правило обработало узел. Правила проверяются в порядке объявления
// до встроенной обработки; признак позволяет отличить пустой результат от
// необработанного узла.
type Rule func(node any, children string) (string, bool)

// ErrUnhandledNode возвращается в строгом режиме, когда для узла не нашлось
// ни пользовательского, ни встроенного правила.
var ErrUnhandledNode = errors.New("markdown: unhandled node type")
