// internal/ads/templates/catalog_ru.go
package templates

import "visa-platform/internal/visa/pricing"

var templatesRU = map[pricing.ServiceType]Template{
	pricing.ServiceUrgent1H: {
		Headlines: []string{
			"Виза Вьетнам за 1 Час",
			"Срочная Виза - Сейчас!",
			"Экстренная Виза",
			"{AIRPORT} Виза Вьетнам",
			"Одобрение за 60 Минут",
			"Срочная Виза Сервис",
			"Быстрая Виза Помощь",
			"Виза Вьетнам Сегодня",
			"Экспресс Виза Вьетнам",
			"Виза в Последний Момент",
		},
		Descriptions: []string{
			"Застряли в {AIRPORT}? Виза Вьетнам одобрена за 1 час. Ручная обработка.",
			"Экстренная виза доступна сейчас. Подайте онлайн, летите сегодня.",
			"Нужна срочная виза? Обработка за 60 минут. Одобрение гарантировано.",
			"Самый быстрый сервис виз. От {PRICE}. Подайте заявку сейчас.",
		},
		FinalURL: baseURL + "/apply?service=urgent-1h&lang=ru",
		Keywords: []string{
			"срочная виза вьетнам",
			"виза вьетнам 1 час",
			"экстренная виза вьетнам",
		},
	},
	pricing.ServiceUrgent2H: {
		Headlines: []string{
			"Виза Вьетнам за 2 Часа",
			"Быстрая Обработка",
			"Одобрение за 2 Часа",
			"{AIRPORT} Быстрая Виза",
			"Экспресс Виза Вьетнам",
			"Быстрый Сервис Виз",
			"Вьетнам Виза Экспресс",
			"Быстрый Путь Виза",
			"Приоритет Вьетнам",
			"Быстрая Виза Вьетнам",
		},
		Descriptions: []string{
			"Виза Вьетнам одобрена за 2 часа. Идеально для плотного графика.",
			"Экспресс обработка для Вьетнама. От {PRICE}. Быстро и гарантировано.",
			"Нужна виза быстро? Обработка за 2 часа доступна сейчас.",
			"Приоритетный сервис из {AIRPORT}. Одобрение всего за 2 часа.",
		},
		FinalURL: baseURL + "/apply?service=urgent-2h&lang=ru",
		Keywords: []string{
			"быстрая виза вьетнам",
			"виза вьетнам 2 часа",
			"экспресс виза вьетнам",
		},
	},
	pricing.ServiceUrgent4H: {
		Headlines: []string{
			"Виза Вьетнам за 4 Часа",
			"Виза в Тот же День",
			"Одобрение за 4 Часа",
			"Экспресс Виза Сегодня",
			"Быстрая Виза Вьетнам",
			"{AIRPORT} Экспресс Виза",
			"Виза до Вылета",
			"Быстрая Обработка",
			"Тот же День Вьетнам",
			"Виза Вьетнам Сегодня",
		},
		Descriptions: []string{
			"Виза Вьетнам за 4 часа. Подайте сейчас, получите одобрение сегодня.",
			"Сервис виз в тот же день для Вьетнама. Профессиональная обработка.",
			"Летите во Вьетнам сегодня? Виза одобрена за 4 часа. Онлайн заявка.",
			"Быстрая обработка. 4 часа. Доверие тысяч путешественников.",
		},
		FinalURL: baseURL + "/apply?service=urgent-4h&lang=ru",
		Keywords: []string{
			"виза вьетнам тот же день",
			"виза вьетнам 4 часа",
			"виза вьетнам сегодня",
		},
	},
	pricing.Service1Day: {
		Headlines: []string{
			"Виза Вьетнам 1 День",
			"Виза на Следующий День",
			"Виза Вьетнам Завтра",
			"Быстрая Обработка",
			"Сервис 24 Часа",
			"Быстрое Одобрение",
			"Э-Виза Вьетнам",
			"Виза 1 Рабочий День",
			"Надежный Сервис",
			"Проверенное Агентство",
		},
		Descriptions: []string{
			"Виза Вьетнам за 1 рабочий день. Профессионально, одобрение гарантировано.",
			"Нужна виза завтра? Подайте сегодня, одобрение за 24 часа.",
			"Быстрый и надежный визовый сервис. Обработка за 1 день.",
			"Доверие путешественников. Виза Вьетнам всего за 1 рабочий день.",
		},
		FinalURL: baseURL + "/apply?service=1day&lang=ru",
		Keywords: []string{
			"виза вьетнам 1 день",
			"виза вьетнам 24 часа",
			"быстрая виза вьетнам",
		},
	},
	pricing.Service2Day: {
		Headlines: []string{
			"Виза Вьетнам 2 Дня",
			"Сервис Виз Вьетнам",
			"Быстрая Обработка",
			"Надежное Агентство",
			"Э-Виза Вьетнам",
			"Надежный Сервис",
			"Простая Заявка",
			"Эксперты по Визам",
			"Доступная Виза",
			"Туристическая Виза",
		},
		Descriptions: []string{
			"Виза Вьетнам за 2 рабочих дня. Доступные цены, профессионально.",
			"Подайте на визу Вьетнам онлайн. Обработка за 2 дня гарантирована.",
			"Планируете поездку во Вьетнам? Виза за 2 дня. Простая онлайн заявка.",
			"Надежный сервис. Быстрая обработка, конкурентные цены.",
		},
		FinalURL: baseURL + "/apply?service=2day&lang=ru",
		Keywords: []string{
			"виза вьетнам 2 дня",
			"виза вьетнам онлайн",
			"э-виза вьетнам",
		},
	},
	pricing.ServiceWeekend: {
		Headlines: []string{
			"Виза на Выходных",
			"Суббота/Воскресенье",
			"Помощь в Праздники",
			"Обработка Выходные",
			"Виза Вьетнам Выходные",
			"Сервис Нерабочее Время",
			"Эксперты Выходные",
			"Сервис Виз Праздники",
			"Открыто на Выходных",
			"Виза Вьетнам 24/7",
		},
		Descriptions: []string{
			"Нужна виза Вьетнам в выходные? Работаем в субботу и воскресенье.",
			"Сервис виз на выходных. Премиум обработка когда офисы закрыты.",
			"Застряли в субботу? Обрабатываем визы Вьетнам по выходным.",
			"Срочная виза в праздник? Наша команда готова. От {PRICE}.",
		},
		FinalURL: baseURL + "/apply?service=weekend&lang=ru",
		Keywords: []string{
			"виза вьетнам выходные",
			"виза вьетнам суббота",
			"виза вьетнам воскресенье",
		},
	},
	pricing.ServiceStandard: {
		Headlines: []string{
			"Виза Вьетнам Онлайн",
			"Простая Заявка Виза",
			"Сервис Э-Виза",
			"Виза Вьетнам Дешево",
			"Подать на Визу Вьетнам",
			"Туристическая Виза",
			"Сервис Виз Онлайн",
			"Помощь Виза Вьетнам",
			"Виза Вьетнам Эконом",
			"Лучший Сервис Виз",
		},
		Descriptions: []string{
			"Виза Вьетнам просто. Подайте онлайн за минуты. Всего от {PRICE}.",
			"Планируете поездку во Вьетнам? Виза онлайн. Быстро, просто, доступно.",
			"Профессиональный сервис виз Вьетнам. Тысячи довольных путешественников.",
			"Самый простой способ получить визу Вьетнам. Быстрая онлайн заявка.",
		},
		FinalURL: baseURL + "/apply?lang=ru",
		Keywords: []string{
			"виза вьетнам",
			"э-виза вьетнам",
			"виза вьетнам онлайн",
			"подать виза вьетнам",
		},
	},
}
