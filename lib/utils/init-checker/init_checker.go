package initchecker

import "fmt"

// CheckInit паникует при неинициализированной зависимости,
// вызывается из NewHandler каждого модуля
func CheckInit(pairs ...any) {
	if len(pairs)%2 != 0 {
		panic("CheckInit: ожидаются пары имя-значение")
	}
	for i := 0; i+1 < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			panic("CheckInit: имя зависимости должно быть строкой")
		}
		if pairs[i+1] == nil {
			panic(fmt.Sprintf("зависимость %s не инициализирована", name))
		}
	}
}
