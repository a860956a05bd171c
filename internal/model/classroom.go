package model

// Classrooms — фиксированный список кабинетов музыкальной школы.
// Предлагается клавиатурой при добавлении урока; жёстко не валидируется.
var Classrooms = []string{"101", "102", "103", "104", "105"}
