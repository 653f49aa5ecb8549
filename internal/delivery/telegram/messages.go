package telegram

const (
	msgGreeting = "Привет!👋\nЯ могу помочь тебе найти информацию о фильмах и сериалах 🎬. " +
		"Пиши мне их названия, а я расскажу тебе, все что знаю!\n\n" +
		"Тут такое дело... Я еще совсем маленький и могу ошибаться, поэтому " +
		"если я выдал тебе неправильный трейлер, отправь мне, пожалуйста, " +
		"сообщение /wrong. Так я смогу осознать свои ошибки и больше их не повторять!"
	msgNoResultHere    = "Здесь нет нужного фильма/сериала"
	msgNoResultRespond = "Сожалею, что не смог помочь 😟"
	msgNotFound        = "К сожалению я не нашел достаточно информации об этом фильме/сериале 😬"
	msgWhich           = "Наверное ты имеешь в виду один из этих фильмов/сериалов 🤨:"
	msgSameName        = "Есть несколько фильмов/сериалов с таким названием, уточни свой запрос 🧐"
	msgThanks          = "Спасибо, теперь я стал умнее 🤓"
	msgWhat            = "Не понимаю, в чем проблема 😕"
	msgPlsStop         = "Хватит 😡"
	msgTrailerPrefix   = "Трейлер: "
)
