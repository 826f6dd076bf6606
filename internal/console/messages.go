package console

// User-facing texts of the interactive console
const (
	msgWelcome        = `Вы открыли программу "Телефонный справочник"`
	msgFirstRun       = "Прежде всего добавьте свой контакт. Поля со **звездочкой*** обязательны к заполнению."
	msgRequiredFields = "Поля со звездочкой обязательны к заполнению."
	msgMissingFields  = "Одно или несколько обязательных полей не были заполнены. Попробуйте еще раз"
	msgSaveFailed     = "Возникла ошибка при сохранении контакта. Вероятно, что то произошло с файлом или его расположение изменилось. Убедитесь, что файл доступен, и попробуйте еще раз"
	msgPressAnyKey    = "Нажмите любую кнопку чтобы продолжить"
	msgGoodbye        = "Спасибо за использование, до свидания!"
	msgUnknownChoice  = "Выбранной опции нет в списке!"

	msgMenuTitle = "Выберите что хотите сделать"

	msgPageSizePrompt   = "Укажите размер пагинации выводимых данных. По умолчанию значение = %d"
	msgNegativePageSize = "Пагинация не может быть отрицательной!"
	msgNotANumber       = "Нужно ввести целое число"
	msgBookFinished     = "Ваш телефонный справочник закончился."
	msgYourContacts     = "Ваши контакты"

	msgEditPickContact = "Выберите цифру контакта для изменения"
	msgEditNoContact   = "Контакта с таким номером нет"
	msgEditWhat        = "Что хотите изменить?"
	msgEditFieldPrompt = "Введите название поля или exit для выхода"
	msgEditNewValue    = "Новые данные"
	msgFieldNotFound   = "Введенное поле не найдено"
	msgEmptyBook       = "Справочник пуст"

	msgSearchPrompt   = "Введите строку для поиска в Вашем телефонном справочнике"
	msgSearchFound    = "Найденные контакты"
	msgSearchNotFound = "Контактов с таким содержимым не было найдено"

	exitWord = "exit"
)

// Menu choices, numbered as shown to the user
const (
	choiceList = iota + 1
	choiceAdd
	choiceEdit
	choiceSearch
	choiceExit
)

var menuOptions = []Option{
	{Label: "1. Посмотреть все контакты", Value: choiceList},
	{Label: "2. Добавить новый контакт", Value: choiceAdd},
	{Label: "3. Редактировать контакт", Value: choiceEdit},
	{Label: "4. Найти контакт", Value: choiceSearch},
	{Label: "5. Выйти", Value: choiceExit},
}
