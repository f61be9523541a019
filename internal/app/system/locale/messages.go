package locale

var catalog = map[string]map[string]string{
	English: {
		"common.authError":    "Authorization error. Please sign in again.",
		"common.unauthorized": "You do not have permission to edit lessons.",
		"common.save":         "Save",
		"common.cancel":       "Cancel",
		"common.delete":       "Delete",
		"common.edit":         "Edit",

		"lesson.titleRequired":  "Lesson title is required.",
		"lesson.courseRequired": "Course ID is missing. Cannot create lesson.",
		"lesson.courseInvalid":  "Invalid course ID format.",
		"lesson.courseIsLesson": "Internal error: Course ID is invalid (same as lesson ID)",
		"lesson.saveError":      "Error saving lesson.",
		"lesson.errorLoading":   "Error loading lesson.",
		"lesson.updateSuccess":  "Lesson updated successfully.",
		"lesson.createSuccess":  "Lesson created successfully.",
		"lesson.saveInProgress": "The lesson is already being saved.",
		"lesson.draftNotFound":  "This editing session has expired. Open the lesson again to continue.",
		"lesson.deleteSuccess":  "Lesson deleted.",
		"lesson.deleteError":    "Error deleting lesson.",
		"lesson.newTitle":       "New lesson",
		"lesson.editTitle":      "Edit lesson",
		"lesson.noBlocks":       "This lesson has no content yet. Add a block to begin.",

		"block.contentRequired": "Content is required for a text block.",
		"block.urlRequired":     "A URL is required for this block.",
		"block.notFound":        "That block no longer exists.",
		"block.add":             "Add block",
		"block.edit":            "Edit block",

		"block.kind.text":   "Text",
		"block.kind.image":  "Image",
		"block.kind.video":  "Video",
		"block.kind.link":   "Link",
		"block.kind.quote":  "Quote",
		"block.kind.spacer": "Spacer",

		"field.content":  "Content",
		"field.url":      "URL",
		"field.videoURL": "YouTube URL",
		"field.caption":  "Caption",
		"field.linkText": "Link text",
		"help.videoURL":  "Paste a YouTube link (watch?v=, youtu.be/, or embed/).",
		"help.spacer":    "A spacer has no settings. It adds vertical space between blocks.",

		"course.loadError": "Error loading course.",
		"course.lessons":   "Lessons",
		"course.noLessons": "This course has no lessons yet.",

		"login.required": "Please fill in all fields!",
		"login.failed":   "Login failed.",
		"login.network":  "Network error. Please try again.",
		"login.title":    "Sign in",
		"login.submit":   "Sign in",

		"nav.courses": "Courses",
		"nav.login":   "Sign in",
		"nav.logout":  "Sign out",

		"editor.tabEdit":    "Edit",
		"editor.tabPreview": "Preview",
		"editor.moveUp":     "Move up",
		"editor.moveDown":   "Move down",
		"editor.discard":    "Discard changes",

		"field.title":       "Title",
		"field.description": "Description",
		"field.username":    "Username",
		"field.password":    "Password",

		"common.back": "Back",

		"course.listTitle":     "Courses",
		"course.noCourses":     "No courses yet.",
		"course.newLesson":     "New lesson",
		"course.notFound":      "Course not found.",
		"course.confirmDelete": "Delete this lesson?",

		"error.forbidden":       "Forbidden",
		"error.unauthorized":    "Sign in required",
		"error.notFound":        "Not found",
		"error.notFoundMessage": "The page you are looking for does not exist.",
		"error.internal":        "Something went wrong",
		"error.internalMessage": "An unexpected error occurred. Please try again later.",
	},
	Russian: {
		"common.authError":    "Ошибка авторизации. Пожалуйста, войдите снова.",
		"common.unauthorized": "У вас нет прав на редактирование уроков.",
		"common.save":         "Сохранить",
		"common.cancel":       "Отмена",
		"common.delete":       "Удалить",
		"common.edit":         "Редактировать",

		"lesson.titleRequired":  "Введите название урока.",
		"lesson.courseRequired": "Не указан ID курса. Невозможно создать урок.",
		"lesson.courseInvalid":  "Неверный формат ID курса.",
		"lesson.courseIsLesson": "Внутренняя ошибка: ID курса совпадает с ID урока",
		"lesson.saveError":      "Ошибка при сохранении урока.",
		"lesson.errorLoading":   "Ошибка при загрузке урока.",
		"lesson.updateSuccess":  "Урок успешно обновлён.",
		"lesson.createSuccess":  "Урок успешно создан.",
		"lesson.saveInProgress": "Урок уже сохраняется.",
		"lesson.draftNotFound":  "Сеанс редактирования истёк. Откройте урок снова.",
		"lesson.deleteSuccess":  "Урок удалён.",
		"lesson.deleteError":    "Ошибка при удалении урока.",
		"lesson.newTitle":       "Новый урок",
		"lesson.editTitle":      "Редактирование урока",
		"lesson.noBlocks":       "В уроке пока нет содержимого. Добавьте блок.",

		"block.contentRequired": "Для текстового блока нужен текст.",
		"block.urlRequired":     "Для этого блока нужна ссылка.",
		"block.notFound":        "Этот блок больше не существует.",
		"block.add":             "Добавить блок",
		"block.edit":            "Редактировать блок",

		"block.kind.text":   "Текст",
		"block.kind.image":  "Изображение",
		"block.kind.video":  "Видео",
		"block.kind.link":   "Ссылка",
		"block.kind.quote":  "Цитата",
		"block.kind.spacer": "Отступ",

		"field.content":  "Содержимое",
		"field.url":      "Ссылка",
		"field.videoURL": "Ссылка на YouTube",
		"field.caption":  "Подпись",
		"field.linkText": "Текст ссылки",
		"help.videoURL":  "Вставьте ссылку YouTube (watch?v=, youtu.be/ или embed/).",
		"help.spacer":    "У отступа нет настроек. Он добавляет пространство между блоками.",

		"course.loadError": "Ошибка при загрузке курса.",
		"course.lessons":   "Уроки",
		"course.noLessons": "В этом курсе пока нет уроков.",

		"login.required": "Пожалуйста, заполните все поля!",
		"login.failed":   "Ошибка входа",
		"login.network":  "Ошибка сети",
		"login.title":    "Вход",
		"login.submit":   "Войти",

		"nav.courses": "Курсы",
		"nav.login":   "Войти",
		"nav.logout":  "Выйти",

		"editor.tabEdit":    "Редактор",
		"editor.tabPreview": "Просмотр",
		"editor.moveUp":     "Вверх",
		"editor.moveDown":   "Вниз",
		"editor.discard":    "Отменить изменения",

		"field.title":       "Название",
		"field.description": "Описание",
		"field.username":    "Имя пользователя",
		"field.password":    "Пароль",

		"common.back": "Назад",

		"course.listTitle":     "Курсы",
		"course.noCourses":     "Курсов пока нет.",
		"course.newLesson":     "Новый урок",
		"course.notFound":      "Курс не найден.",
		"course.confirmDelete": "Удалить этот урок?",

		"error.forbidden":       "Доступ запрещён",
		"error.unauthorized":    "Требуется вход",
		"error.notFound":        "Не найдено",
		"error.notFoundMessage": "Страница не существует.",
		"error.internal":        "Что-то пошло не так",
		"error.internalMessage": "Произошла непредвиденная ошибка. Попробуйте позже.",
	},
}
