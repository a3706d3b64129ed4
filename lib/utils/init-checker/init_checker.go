package initchecker

import "fmt"

// CheckInit принимает пары "имя, зависимость" и паникует,
// если какая-то из зависимостей не инициализирована.
// Вызывается из NewHandler при старте сервиса
func CheckInit(pairs ...any) {
	if len(pairs)%2 != 0 {
		panic("CheckInit: ожидаются пары имя-значение")
	}
	for idx := 0; idx < len(pairs); idx += 2 {
		name, ok := pairs[idx].(string)
		if !ok {
			panic(fmt.Sprintf("CheckInit: аргумент %d должен быть именем зависимости", idx))
		}
		if pairs[idx+1] == nil {
			panic(fmt.Sprintf("зависимость %v не инициализирована", name))
		}
	}
}
