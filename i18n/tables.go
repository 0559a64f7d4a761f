package i18n

var russian = map[string]string{
	"nav_sessions":                "Сеансы",
	"nav_seats":                   "Места",
	"nav_bookings":                "Бронирования",
	"nav_admin":                   "Админ",
	"guest":                       "Гость",
	"logout":                      "Выйти",
	"theme_light":                 "Светлая",
	"theme_dark":                  "Темная",
	"language":                    "Язык",
	"hero_eyebrow":                "Бронирование билетов в кино",
	"hero_title":                  "Планируйте вечер за пару кликов.",
	"hero_lead":                   "Выбирайте фильмы, сравнивайте сеансы и фиксируйте лучшие места в зале. Все данные синхронизируются с кассой в реальном времени.",
	"today_listing":               "Сегодня в афише",
	"sessions_available":          "Доступно сеансов",
	"quick_access":                "Быстрый доступ",
	"quick_access_lead":           "Сохраните любимые фильмы и получайте напоминания о новых сеансах.",
	"section_movies":              "Афиша",
	"section_movies_lead":         "Выберите фильм, чтобы увидеть ближайшие сеансы.",
	"section_sessions":            "Сеансы",
	"section_sessions_lead":       "Сравните время и стоимость.",
	"section_seats":               "Выбор мест",
	"section_seats_lead":          "Нажмите на места, чтобы добавить их в бронь.",
	"screen":                      "Экран",
	"select_session_hint":         "Выберите сеанс, чтобы увидеть схему зала.",
	"booking":                     "Бронирование",
	"booking_movie":               "Фильм",
	"booking_time":                "Время",
	"booking_seats":               "Места",
	"booking_total":               "Итого",
	"booking_submit":              "Забронировать",
	"profile":                     "Профиль",
	"profile_lead":                "Войдите, чтобы видеть свои бронирования.",
	"auth_login":                  "Вход",
	"auth_register":               "Регистрация",
	"label_name":                  "Имя",
	"label_email":                 "Email",
	"label_password":              "Пароль",
	"auth_submit_login":           "Войти",
	"auth_submit_register":        "Создать аккаунт",
	"no_bookings":                 "У вас пока нет бронирований.",
	"status_cancelled":            "Отменено",
	"status_confirmed":            "Подтверждено",
	"seats_prefix":                "Места",
	"qr":                          "QR",
	"pdf":                         "PDF",
	"cancel":                      "Отменить",
	"admin_title":                 "Админ-панель",
	"admin_lead":                  "Управляйте фильмами, залами и сеансами.",
	"admin_movies":                "Фильмы",
	"admin_halls":                 "Залы",
	"admin_sessions":              "Сеансы",
	"placeholder_title":           "Название",
	"placeholder_description":     "Описание",
	"placeholder_duration":        "Длительность (мин)",
	"placeholder_poster":          "Постер URL",
	"placeholder_rows":            "Ряды",
	"placeholder_seats":           "Места",
	"placeholder_movie":           "Выберите фильм",
	"placeholder_hall":            "Выберите зал",
	"placeholder_price":           "Цена",
	"button_update":               "Обновить",
	"button_add":                  "Добавить",
	"button_edit":                 "Изменить",
	"button_delete":               "Удалить",
	"session_fallback":            "Сеанс",
	"movie_fallback":              "Фильм",
	"qr_title":                    "QR для бронирования",
	"close":                       "Закрыть",
	"duration_unit":               "мин",
	"seat_row_abbr":               "Р",
	"seat_seat_abbr":              "М",
	"flash_account_created":       "Аккаунт создан.",
	"flash_logged_in":             "Вы вошли в профиль.",
	"flash_auth_error":            "Ошибка авторизации",
	"flash_login_required":        "Войдите, чтобы забронировать места.",
	"flash_select_seats":          "Выберите места для бронирования.",
	"flash_booking_confirmed":     "Бронирование подтверждено.",
	"flash_booking_failed":        "Не удалось забронировать",
	"flash_booking_cancelled":     "Бронирование отменено.",
	"flash_cancel_failed":         "Не удалось отменить",
	"flash_ticket_failed":         "Не удалось скачать билет",
	"flash_qr_failed":             "Не удалось получить QR",
	"flash_movie_saved":           "Фильм сохранен.",
	"flash_movie_save_failed":     "Не удалось сохранить фильм",
	"flash_movie_deleted":         "Фильм удален.",
	"flash_movie_delete_failed":   "Не удалось удалить фильм",
	"flash_hall_saved":            "Зал сохранен.",
	"flash_hall_save_failed":      "Не удалось сохранить зал",
	"flash_hall_deleted":          "Зал удален.",
	"flash_hall_delete_failed":    "Не удалось удалить зал",
	"flash_session_missing":       "Заполните фильм, зал и дату сеанса.",
	"flash_session_saved":         "Сеанс сохранен.",
	"flash_session_save_failed":   "Не удалось сохранить сеанс",
	"flash_session_deleted":       "Сеанс удален.",
	"flash_session_delete_failed": "Не удалось удалить сеанс",
	"flash_select_session":        "Выберите сеанс.",
	"flash_load_failed":           "Не удалось загрузить данные",
	"flash_profile_saved":         "Профиль обновлен.",
	"flash_profile_failed":        "Не удалось обновить профиль",
	"flash_password_changed":      "Пароль изменен.",
	"flash_password_failed":       "Не удалось изменить пароль",
	"flash_ticket_saved":          "Билет сохранен:",
	"flash_status_updated":        "Статус бронирования обновлен.",
	"flash_status_failed":         "Не удалось обновить статус",
	"flash_admin_required":        "Доступно только администратору.",
	"label_current_password":      "Текущий пароль",
	"label_new_password":          "Новый пароль",
	"profile_save":                "Сохранить",
	"password_change":             "Сменить пароль",
	"loading":                     "Загрузка...",
	"no_movies":                   "Фильмов пока нет.",
	"no_sessions":                 "Сеансов пока нет.",
	"legend_free":                 "Свободно",
	"legend_booked":               "Занято",
	"legend_selected":             "Выбрано",
	"placeholder_start":           "Начало (ГГГГ-ММ-ДД ЧЧ:ММ)",
	"placeholder_name":            "Название зала",
	"hint_movies":                 "печатайте для фильтра • enter: сеансы • ctrl+b: брони • ctrl+a: вход • ctrl+p: профиль • ctrl+g: админ • ctrl+l: язык • ctrl+t: тема • ctrl+c: выход",
	"hint_sessions":               "печатайте для фильтра • enter: места • esc: назад",
	"hint_seats":                  "стрелки: курсор • пробел: выбрать • m: оплата • enter: забронировать • esc: назад",
	"hint_bookings":               "c: отменить • r: QR • t: билет • s: статус (админ) • esc: назад",
	"hint_form":                   "tab: поле • ←/→: выбор • enter: отправить • ctrl+r: режим • esc: назад",
	"hint_qr":                     "esc: закрыть",
	"hint_admin":                  "tab: раздел • n: новый • e: изменить • d: удалить • esc: назад",
	"hint_language":               "enter: выбрать • esc: назад",
	"filter_label":                "Фильтр",
	"flash_seat_unavailable":      "Место недоступно",
	"flash_seat_duplicate":        "Место указано дважды",
	"payment_method":              "Оплата",
	"payment_card":                "Карта",
	"payment_cash":                "Наличные",
	"auth_switch_hint":            "ctrl+r: вход / регистрация",
}

var english = map[string]string{
	"nav_sessions":                "Sessions",
	"nav_seats":                   "Seats",
	"nav_bookings":                "Bookings",
	"nav_admin":                   "Admin",
	"guest":                       "Guest",
	"logout":                      "Log out",
	"theme_light":                 "Light",
	"theme_dark":                  "Dark",
	"language":                    "Language",
	"hero_eyebrow":                "Movie ticket booking",
	"hero_title":                  "Plan your night in a few clicks.",
	"hero_lead":                   "Pick films, compare sessions, and lock the best seats. Everything syncs with the box office in real time.",
	"today_listing":               "Today in listings",
	"sessions_available":          "Sessions available",
	"quick_access":                "Quick access",
	"quick_access_lead":           "Save favorite movies and get reminders about new sessions.",
	"section_movies":              "Now showing",
	"section_movies_lead":         "Choose a movie to see nearby sessions.",
	"section_sessions":            "Sessions",
	"section_sessions_lead":       "Compare time and price.",
	"section_seats":               "Seat selection",
	"section_seats_lead":          "Tap seats to add them to your booking.",
	"screen":                      "Screen",
	"select_session_hint":         "Select a session to see the seating plan.",
	"booking":                     "Booking",
	"booking_movie":               "Movie",
	"booking_time":                "Time",
	"booking_seats":               "Seats",
	"booking_total":               "Total",
	"booking_submit":              "Book now",
	"profile":                     "Profile",
	"profile_lead":                "Sign in to see your bookings.",
	"auth_login":                  "Sign in",
	"auth_register":               "Register",
	"label_name":                  "Name",
	"label_email":                 "Email",
	"label_password":              "Password",
	"auth_submit_login":           "Sign in",
	"auth_submit_register":        "Create account",
	"no_bookings":                 "You have no bookings yet.",
	"status_cancelled":            "Cancelled",
	"status_confirmed":            "Confirmed",
	"seats_prefix":                "Seats",
	"qr":                          "QR",
	"pdf":                         "PDF",
	"cancel":                      "Cancel",
	"admin_title":                 "Admin panel",
	"admin_lead":                  "Manage movies, halls, and sessions.",
	"admin_movies":                "Movies",
	"admin_halls":                 "Halls",
	"admin_sessions":              "Sessions",
	"placeholder_title":           "Title",
	"placeholder_description":     "Description",
	"placeholder_duration":        "Duration (min)",
	"placeholder_poster":          "Poster URL",
	"placeholder_rows":            "Rows",
	"placeholder_seats":           "Seats",
	"placeholder_movie":           "Select a movie",
	"placeholder_hall":            "Select a hall",
	"placeholder_price":           "Price",
	"button_update":               "Update",
	"button_add":                  "Add",
	"button_edit":                 "Edit",
	"button_delete":               "Delete",
	"session_fallback":            "Session",
	"movie_fallback":              "Movie",
	"qr_title":                    "QR for booking",
	"close":                       "Close",
	"duration_unit":               "min",
	"seat_row_abbr":               "R",
	"seat_seat_abbr":              "S",
	"flash_account_created":       "Account created.",
	"flash_logged_in":             "Signed in.",
	"flash_auth_error":            "Authorization error",
	"flash_login_required":        "Sign in to book seats.",
	"flash_select_seats":          "Choose seats to book.",
	"flash_booking_confirmed":     "Booking confirmed.",
	"flash_booking_failed":        "Unable to book",
	"flash_booking_cancelled":     "Booking cancelled.",
	"flash_cancel_failed":         "Unable to cancel",
	"flash_ticket_failed":         "Unable to download ticket",
	"flash_qr_failed":             "Unable to get QR",
	"flash_movie_saved":           "Movie saved.",
	"flash_movie_save_failed":     "Unable to save movie",
	"flash_movie_deleted":         "Movie deleted.",
	"flash_movie_delete_failed":   "Unable to delete movie",
	"flash_hall_saved":            "Hall saved.",
	"flash_hall_save_failed":      "Unable to save hall",
	"flash_hall_deleted":          "Hall deleted.",
	"flash_hall_delete_failed":    "Unable to delete hall",
	"flash_session_missing":       "Fill movie, hall, and session date.",
	"flash_session_saved":         "Session saved.",
	"flash_session_save_failed":   "Unable to save session",
	"flash_session_deleted":       "Session deleted.",
	"flash_session_delete_failed": "Unable to delete session",
	"flash_select_session":        "Select a session.",
	"flash_load_failed":           "Unable to load data",
	"flash_profile_saved":         "Profile updated.",
	"flash_profile_failed":        "Unable to update profile",
	"flash_password_changed":      "Password changed.",
	"flash_password_failed":       "Unable to change password",
	"flash_ticket_saved":          "Ticket saved:",
	"flash_status_updated":        "Booking status updated.",
	"flash_status_failed":         "Unable to update status",
	"flash_admin_required":        "Admins only.",
	"label_current_password":      "Current password",
	"label_new_password":          "New password",
	"profile_save":                "Save",
	"password_change":             "Change password",
	"loading":                     "Loading...",
	"no_movies":                   "No movies yet.",
	"no_sessions":                 "No sessions yet.",
	"legend_free":                 "Free",
	"legend_booked":               "Booked",
	"legend_selected":             "Selected",
	"placeholder_start":           "Start (YYYY-MM-DD HH:MM)",
	"placeholder_name":            "Hall name",
	"hint_movies":                 "type to filter • enter: sessions • ctrl+b: bookings • ctrl+a: sign in • ctrl+p: profile • ctrl+g: admin • ctrl+l: language • ctrl+t: theme • ctrl+c: quit",
	"hint_sessions":               "type to filter • enter: seats • esc: back",
	"hint_seats":                  "arrows: move • space: toggle • m: payment • enter: book • esc: back",
	"hint_bookings":               "c: cancel • r: QR • t: ticket • s: status (admin) • esc: back",
	"hint_form":                   "tab: next field • ←/→: choose • enter: submit • ctrl+r: switch mode • esc: back",
	"hint_qr":                     "esc: close",
	"hint_admin":                  "tab: section • n: new • e: edit • d: delete • esc: back",
	"hint_language":               "enter: choose • esc: back",
	"filter_label":                "Filter",
	"flash_seat_unavailable":      "Seat is not available",
	"flash_seat_duplicate":        "Seat is listed twice",
	"payment_method":              "Payment",
	"payment_card":                "Card",
	"payment_cash":                "Cash",
	"auth_switch_hint":            "ctrl+r: sign in / register",
}

var kazakh = map[string]string{
	"nav_sessions":                "Сеанстар",
	"nav_seats":                   "Орындар",
	"nav_bookings":                "Брондаулар",
	"nav_admin":                   "Админ",
	"guest":                       "Қонақ",
	"logout":                      "Шығу",
	"theme_light":                 "Жарық",
	"theme_dark":                  "Қараңғы",
	"language":                    "Тіл",
	"hero_eyebrow":                "Кино билеттерін брондау",
	"hero_title":                  "Кешті бірнеше рет басып жоспарлаңыз.",
	"hero_lead":                   "Фильмдерді таңдаңыз, сеанстарды салыстырыңыз және залдағы ең жақсы орындарды бекітіңіз. Барлығы кассамен нақты уақытта синхрондалады.",
	"today_listing":               "Бүгінгі афиша",
	"sessions_available":          "Қолжетімді сеанс",
	"quick_access":                "Жылдам қолжетім",
	"quick_access_lead":           "Таңдаулы фильмдерді сақтап, жаңа сеанстар туралы еске салу алыңыз.",
	"section_movies":              "Афиша",
	"section_movies_lead":         "Жақын сеанстарды көру үшін фильм таңдаңыз.",
	"section_sessions":            "Сеанстар",
	"section_sessions_lead":       "Уақыты мен бағасын салыстырыңыз.",
	"section_seats":               "Орын таңдау",
	"section_seats_lead":          "Брондауға қосу үшін орындарды басыңыз.",
	"screen":                      "Экран",
	"select_session_hint":         "Зал сызбасын көру үшін сеанс таңдаңыз.",
	"booking":                     "Брондау",
	"booking_movie":               "Фильм",
	"booking_time":                "Уақыты",
	"booking_seats":               "Орындар",
	"booking_total":               "Барлығы",
	"booking_submit":              "Брондау",
	"profile":                     "Профиль",
	"profile_lead":                "Брондауларыңызды көру үшін кіріңіз.",
	"auth_login":                  "Кіру",
	"auth_register":               "Тіркелу",
	"label_name":                  "Аты",
	"label_email":                 "Email",
	"label_password":              "Құпиясөз",
	"auth_submit_login":           "Кіру",
	"auth_submit_register":        "Тіркелу",
	"no_bookings":                 "Сізде әзірге брондау жоқ.",
	"status_cancelled":            "Бас тартылды",
	"status_confirmed":            "Расталды",
	"seats_prefix":                "Орындар",
	"qr":                          "QR",
	"pdf":                         "PDF",
	"cancel":                      "Бас тарту",
	"admin_title":                 "Админ панель",
	"admin_lead":                  "Фильмдер, залдар және сеанстарды басқарыңыз.",
	"admin_movies":                "Фильмдер",
	"admin_halls":                 "Залдар",
	"admin_sessions":              "Сеанстар",
	"placeholder_title":           "Атауы",
	"placeholder_description":     "Сипаттама",
	"placeholder_duration":        "Ұзақтығы (мин)",
	"placeholder_poster":          "Постер URL",
	"placeholder_rows":            "Қатарлар",
	"placeholder_seats":           "Орындар",
	"placeholder_movie":           "Фильмді таңдаңыз",
	"placeholder_hall":            "Залды таңдаңыз",
	"placeholder_price":           "Бағасы",
	"button_update":               "Жаңарту",
	"button_add":                  "Қосу",
	"button_edit":                 "Өзгерту",
	"button_delete":               "Жою",
	"session_fallback":            "Сеанс",
	"movie_fallback":              "Фильм",
	"qr_title":                    "Брондауға арналған QR",
	"close":                       "Жабу",
	"duration_unit":               "мин",
	"seat_row_abbr":               "Қ",
	"seat_seat_abbr":              "О",
	"flash_account_created":       "Аккаунт құрылды.",
	"flash_logged_in":             "Профильге кірдіңіз.",
	"flash_auth_error":            "Авторизация қатесі",
	"flash_login_required":        "Орындарды брондау үшін кіріңіз.",
	"flash_select_seats":          "Брондау үшін орындарды таңдаңыз.",
	"flash_booking_confirmed":     "Брондау расталды.",
	"flash_booking_failed":        "Брондау мүмкін емес",
	"flash_booking_cancelled":     "Брондау тоқтатылды.",
	"flash_cancel_failed":         "Бас тарту мүмкін емес",
	"flash_ticket_failed":         "Билетті жүктеу мүмкін емес",
	"flash_qr_failed":             "QR алу мүмкін емес",
	"flash_movie_saved":           "Фильм сақталды.",
	"flash_movie_save_failed":     "Фильмді сақтау мүмкін емес",
	"flash_movie_deleted":         "Фильм жойылды.",
	"flash_movie_delete_failed":   "Фильмді жою мүмкін емес",
	"flash_hall_saved":            "Зал сақталды.",
	"flash_hall_save_failed":      "Залды сақтау мүмкін емес",
	"flash_hall_deleted":          "Зал жойылды.",
	"flash_hall_delete_failed":    "Залды жою мүмкін емес",
	"flash_session_missing":       "Фильм, зал және сеанс күнін толтырыңыз.",
	"flash_session_saved":         "Сеанс сақталды.",
	"flash_session_save_failed":   "Сеансты сақтау мүмкін емес",
	"flash_session_deleted":       "Сеанс жойылды.",
	"flash_session_delete_failed": "Сеансты жою мүмкін емес",
	"flash_select_session":        "Сеансты таңдаңыз.",
	"flash_load_failed":           "Деректерді жүктеу мүмкін емес",
	"flash_profile_saved":         "Профиль жаңартылды.",
	"flash_profile_failed":        "Профильді жаңарту мүмкін емес",
	"flash_password_changed":      "Құпиясөз өзгертілді.",
	"flash_password_failed":       "Құпиясөзді өзгерту мүмкін емес",
	"flash_ticket_saved":          "Билет сақталды:",
	"flash_status_updated":        "Брондау күйі жаңартылды.",
	"flash_status_failed":         "Күйді жаңарту мүмкін емес",
	"flash_admin_required":        "Тек әкімшіге қолжетімді.",
	"label_current_password":      "Ағымдағы құпиясөз",
	"label_new_password":          "Жаңа құпиясөз",
	"profile_save":                "Сақтау",
	"password_change":             "Құпиясөзді өзгерту",
	"loading":                     "Жүктелуде...",
	"no_movies":                   "Әзірге фильмдер жоқ.",
	"no_sessions":                 "Әзірге сеанстар жоқ.",
	"legend_free":                 "Бос",
	"legend_booked":               "Бос емес",
	"legend_selected":             "Таңдалған",
	"placeholder_start":           "Басталуы (ЖЖЖЖ-АА-КК СС:ММ)",
	"placeholder_name":            "Зал атауы",
	"hint_movies":                 "сүзу үшін теріңіз • enter: сеанстар • ctrl+b: брондар • ctrl+a: кіру • ctrl+p: профиль • ctrl+g: админ • ctrl+l: тіл • ctrl+t: тақырып • ctrl+c: шығу",
	"hint_sessions":               "сүзу үшін теріңіз • enter: орындар • esc: артқа",
	"hint_seats":                  "бағыттар: курсор • бос орын: таңдау • m: төлем • enter: брондау • esc: артқа",
	"hint_bookings":               "c: бас тарту • r: QR • t: билет • s: күй (админ) • esc: артқа",
	"hint_form":                   "tab: келесі өріс • ←/→: таңдау • enter: жіберу • ctrl+r: режим • esc: артқа",
	"hint_qr":                     "esc: жабу",
	"hint_admin":                  "tab: бөлім • n: жаңа • e: өзгерту • d: жою • esc: артқа",
	"hint_language":               "enter: таңдау • esc: артқа",
	"filter_label":                "Сүзгі",
	"flash_seat_unavailable":      "Орын қолжетімсіз",
	"flash_seat_duplicate":        "Орын екі рет көрсетілген",
	"payment_method":              "Төлем",
	"payment_card":                "Карта",
	"payment_cash":                "Қолма-қол",
	"auth_switch_hint":            "ctrl+r: кіру / тіркелу",
}
