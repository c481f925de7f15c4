// Package seed builds synthetic data plans for the seeding migrations.
// Generators only produce in-memory plans; executing the inserts is the
// migration's job, which keeps every distribution property unit-testable
// without a database.
package seed

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
)

// Russian mobile operator prefixes (first 3 digits after +7).
var operatorCodes = []string{
	"900", "901", "902", "903", "904", "905", "906", "907",
	"908", "909", "910", "911", "912", "913", "914", "915",
	"916", "917", "918", "919", "920", "921", "922", "923",
	"924", "925", "926", "927", "928", "929", "930", "931",
	"932", "933", "934", "936", "937", "938", "939", "950",
	"951", "952", "953", "954", "955", "956", "957", "958",
	"959", "960", "961", "962", "963", "964", "965", "966",
	"967", "968", "969", "977", "978", "980", "981", "982",
	"983", "984", "985", "986", "987", "988", "989", "991",
	"992", "993", "994", "995", "996", "997", "999",
}

var surnames = []string{
	"Иванов", "Петров", "Сидоров", "Смирнов", "Кузнецов", "Попов", "Соколов",
	"Лебедев", "Козлов", "Новиков", "Морозов", "Волков", "Соловьев",
	"Васильев", "Зайцев", "Павлов", "Семенов", "Голубев", "Виноградов",
	"Богданов", "Воробьев", "Федоров", "Михайлов", "Орлов", "Филиппов",
	"Марков", "Алексеев", "Егоров", "Степанов", "Николаев",
	"Андреев", "Макаров", "Никитин", "Захаров",
	"Борисов", "Яковлев", "Григорьев", "Романов",
}

var firstNames = []string{
	"Александр", "Дмитрий", "Максим", "Сергей", "Андрей", "Алексей", "Артем",
	"Илья", "Кирилл", "Михаил", "Никита", "Матвей", "Роман", "Егор",
	"Арсений", "Иван", "Денис", "Евгений", "Тимофей", "Владислав",
	"Игорь", "Владимир", "Павел", "Руслан", "Марк", "Лев",
	"Антон", "Николай", "Данил", "Олег", "Вадим", "Степан",
	"Юрий", "Борис", "Ярослав", "Эдуард", "Валерий", "Григорий",
	"Мария", "Анна", "Виктория", "Екатерина", "Наталья", "Марина",
	"Ольга", "Елена", "Светлана", "Татьяна", "Ирина", "Юлия", "Анастасия",
	"Дарья", "Евгения", "Ксения", "Алина", "Валерия", "Полина", "Вероника",
	"Александра", "Кристина", "София", "Диана", "Арина", "Милана", "Алиса",
}

var patronymics = []string{
	"Александрович", "Дмитриевич", "Максимович", "Сергеевич", "Андреевич",
	"Алексеевич", "Артемович", "Ильич", "Кириллович", "Михайлович",
	"Никитич", "Матвеевич", "Романович", "Егорович", "Арсеньевич",
	"Иванович", "Денисович", "Евгеньевич", "Тимофеевич", "Владиславович",
	"Александровна", "Дмитриевна", "Максимовна", "Сергеевна", "Андреевна",
	"Алексеевна", "Артемовна", "Ильинична", "Кирилловна", "Михайловна",
	"Никитична", "Матвеевна", "Романовна", "Егоровна", "Арсеньевна",
	"Ивановна", "Денисовна", "Евгеньевна", "Тимофеевна", "Владиславовна",
}

// Phone generates a Russian mobile number in +7XXXXXXXXXX format.
func Phone() string {
	code := gofakeit.RandomString(operatorCodes)
	return fmt.Sprintf("+7%s%s", code, gofakeit.DigitN(7))
}

// INN generates a 12-digit individual taxpayer number. No checksum: the
// schema only cares about length and uniqueness.
func INN() string {
	return gofakeit.DigitN(12)
}

// FullName generates a Russian surname and given name pair.
func FullName() (surname, name string) {
	return gofakeit.RandomString(surnames), gofakeit.RandomString(firstNames)
}

// Patronymic generates a Russian patronymic.
func Patronymic() string {
	return gofakeit.RandomString(patronymics)
}
