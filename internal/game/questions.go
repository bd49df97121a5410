package game

// DefaultQuestions is the show's stock question bank, used to seed a
// fresh room when no state is stored yet.
func DefaultQuestions() []Question {
	return []Question{
		{
			ID:           1,
			Theme:        "Cuisine DZ",
			QuestionText: "Quel est le plat incontournable d'un mariage algérien ?",
			Answers: []Answer{
				{ID: 1, Text: "Couscous", Points: 45},
				{ID: 2, Text: "Chorba", Points: 25},
				{ID: 3, Text: "Bourek", Points: 15},
				{ID: 4, Text: "Tajine Zitoun", Points: 10},
				{ID: 5, Text: "Ham Lahlou", Points: 5},
			},
		},
		{
			ID:           2,
			Theme:        "Vie Quotidienne",
			QuestionText: "Qu'est-ce qu'on achète toujours au dernier moment avant l'Aïd ?",
			Answers: []Answer{
				{ID: 1, Text: "Les vêtements des enfants", Points: 40},
				{ID: 2, Text: "La semoule pour les gâteaux", Points: 30},
				{ID: 3, Text: "Le mouton", Points: 15},
				{ID: 4, Text: "Le henné", Points: 10},
				{ID: 5, Text: "Les bougies", Points: 5},
			},
		},
		{
			ID:           3,
			Theme:        "Transports",
			QuestionText: "Quel est le moyen de transport le plus typique à Alger ?",
			Answers: []Answer{
				{ID: 1, Text: "Métro", Points: 35},
				{ID: 2, Text: "Téléphérique", Points: 30},
				{ID: 3, Text: "Bus ETUSA", Points: 20},
				{ID: 4, Text: "Taxi clandestin", Points: 10},
				{ID: 5, Text: "Tramway", Points: 5},
			},
		},
		{
			ID:           4,
			Theme:        "Géographie",
			QuestionText: "Citez une ville côtière algérienne célèbre pour ses plages.",
			Answers: []Answer{
				{ID: 1, Text: "Bejaia", Points: 35},
				{ID: 2, Text: "Oran", Points: 25},
				{ID: 3, Text: "Jijel", Points: 20},
				{ID: 4, Text: "Annaba", Points: 15},
				{ID: 5, Text: "Tipaza", Points: 5},
			},
		},
		{
			ID:           5,
			Theme:        "Culture",
			QuestionText: "Quel objet trouve-t-on traditionnellement dans un salon algérien ?",
			Answers: []Answer{
				{ID: 1, Text: "Sedari / Canapé", Points: 40},
				{ID: 2, Text: "Tapis berbère", Points: 25},
				{ID: 3, Text: "Table basse ronde", Points: 15},
				{ID: 4, Text: "Service à thé en argent", Points: 10},
				{ID: 5, Text: "Cadre avec versets", Points: 10},
			},
		},
		{
			ID:           6,
			Theme:        "Sport",
			QuestionText: "Quel est le surnom de l'équipe nationale de football d'Algérie ?",
			Answers: []Answer{
				{ID: 1, Text: "Les Fennecs", Points: 50},
				{ID: 2, Text: "Les Verts", Points: 30},
				{ID: 3, Text: "El Khadra", Points: 20},
			},
		},
		{
			ID:           7,
			Theme:        "Musique",
			QuestionText: "Citez un style de musique populaire en Algérie.",
			Answers: []Answer{
				{ID: 1, Text: "Raï", Points: 40},
				{ID: 2, Text: "Chaâbi", Points: 30},
				{ID: 3, Text: "Kabyle", Points: 15},
				{ID: 4, Text: "Staifi", Points: 10},
				{ID: 5, Text: "Gnaoui", Points: 5},
			},
		},
		{
			ID:           8,
			Theme:        "Ramadan",
			QuestionText: "Que mange-t-on en premier pour rompre le jeûne ?",
			Answers: []Answer{
				{ID: 1, Text: "Dattes", Points: 60},
				{ID: 2, Text: "Lben", Points: 25},
				{ID: 3, Text: "Eau", Points: 15},
			},
		},
		{
			ID:           9,
			Theme:        "Langue",
			QuestionText: "Citez une expression typiquement algérienne pour dire 'C'est bon/D'accord'.",
			Answers: []Answer{
				{ID: 1, Text: "Saha", Points: 40},
				{ID: 2, Text: "Mlih", Points: 25},
				{ID: 3, Text: "C'est bon", Points: 15},
				{ID: 4, Text: "Yaatik es-saha", Points: 10},
				{ID: 5, Text: "Aywa", Points: 10},
			},
		},
		{
			ID:           10,
			Theme:        "Patrimoine",
			QuestionText: "Citez un monument historique célèbre en Algérie.",
			Answers: []Answer{
				{ID: 1, Text: "Maquam E'chahid", Points: 45},
				{ID: 2, Text: "La Casbah d'Alger", Points: 30},
				{ID: 3, Text: "Ponts de Constantine", Points: 15},
				{ID: 4, Text: "Timgad", Points: 10},
			},
		},
	}
}
