package affirmation

// Themes is the vocabulary a batch draws its topics from.
var Themes = []string{
	"autoestima",
	"gratitud",
	"calma",
	"confianza",
	"resiliencia",
	"amor propio",
	"motivación",
	"paciencia",
	"salud",
	"crecimiento personal",
	"alegría",
	"valentía",
	"descanso",
	"relaciones",
	"abundancia",
}

// FallbackPool holds the hand-written affirmations served when generation fails.
var FallbackPool = []string{
	"Soy suficiente tal como soy.",
	"Merezco amor y respeto.",
	"Cada día me vuelvo más fuerte.",
	"Confío en mi propio camino.",
	"Mi calma es mi mayor fuerza.",
	"Hoy elijo ser amable conmigo.",
	"Celebro cada pequeño logro.",
	"Puedo con lo que venga hoy.",
	"Mis sueños merecen mi tiempo.",
	"Respiro y suelto lo que no controlo.",
	"Agradezco todo lo que tengo.",
	"Mi voz importa.",
	"Avanzo a mi propio ritmo.",
	"Soy capaz de grandes cosas.",
	"Me permito descansar sin culpa.",
	"Hoy es un buen día para empezar.",
	"Mi valor no depende de nadie.",
	"Acepto mis emociones con cariño.",
	"Estoy creciendo cada día.",
	"La paz empieza en mí.",
}
