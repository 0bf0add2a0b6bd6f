package chaplet

// Static prayer tables for the Chaplet of St. Michael. The texts are fixed
// data; BuildScript validates their shape once at startup.

// FinalSignoff is keyed once on shutdown, after the prayer loop stops.
const FinalSignoff = "QUIS UT DEUS"

var opening = Text{
	English: "O God, come to my assistance. O Lord, make haste to help me.",
	Latin:   "Deus, in adiutórium meum inténde. Dómine, ad adiuvándum me festína.",
}

var gloryBe = Text{
	English: "Glory be to the Father, and to the Son, and to the Holy Spirit. " +
		"As it was in the beginning, is now, and ever shall be, " +
		"world without end. Amen.",
	Latin: "Glória Patri, et Fílio, et Spirítui Sancto. " +
		"Sicut erat in princípio, et nunc, et semper, " +
		"et in sǽcula sæculórum. Amen.",
}

var ourFather = Text{
	English: "Our Father, who art in heaven, hallowed be thy name. " +
		"Thy kingdom come, thy will be done, on earth as it is in heaven. " +
		"Give us this day our daily bread, and forgive us our trespasses, " +
		"as we forgive those who trespass against us. " +
		"And lead us not into temptation, but deliver us from evil. Amen.",
	Latin: "Pater noster, qui es in cælis, sanctificétur nomen tuum. " +
		"Advéniat regnum tuum. Fiat volúntas tua, sicut in cælo et in terra. " +
		"Panem nostrum quotidiánum da nobis hódie. " +
		"Et dimítte nobis débita nostra, sicut et nos dimíttimus debitóribus nostris. " +
		"Et ne nos indúcas in tentatiónem, sed líbera nos a malo. Amen.",
}

var hailMary = Text{
	English: "Hail Mary, full of grace, the Lord is with thee. " +
		"Blessed art thou among women, and blessed is the fruit of thy womb, Jesus. " +
		"Holy Mary, Mother of God, pray for us sinners, " +
		"now and at the hour of our death. Amen.",
	Latin: "Ave María, grátia plena, Dóminus tecum. " +
		"Benedícta tu in muliéribus, et benedíctus fructus ventris tui, Iesus. " +
		"Sancta María, Mater Dei, ora pro nobis peccatóribus, " +
		"nunc et in hora mortis nostræ. Amen.",
}

var closing = Text{
	English: "O glorious Prince Saint Michael, chief and commander of the heavenly hosts, " +
		"guardian of souls, vanquisher of rebel spirits, servant in the house of the Divine King, " +
		"and our admirable conductor, thou who dost shine with excellence and superhuman virtue, " +
		"vouchsafe to deliver us from all evil, who turn to thee with confidence, " +
		"and enable us by thy gracious protection to serve God more and more faithfully every day. " +
		"Pray for us, O glorious Saint Michael, Prince of the Church of Jesus Christ, " +
		"that we may be made worthy of His promises.",
	Latin: "O Princeps glorióse sancte Míchaël, dux et præpósite cœléstium exercítuum, " +
		"custos animárum, dómitor spirítuum rebéllum, serve in domo divíni Regis, " +
		"et noster condúctor mirábilis, qui cum excelléntia et virtúte cœlésti fulges, " +
		"líbera nos a malo, qui ad te cum confidéntia convértimus, " +
		"et nos propítio præsídio tuo fac, quotídie Deum magis fidéliter sevíre. " +
		"Ora pro nobis, O glorióse Sancte Míchaël, princeps ecclésiæ Jesu Christi, " +
		"ut digni efficiámur promissiónibus eius.",
}

var finalInvocation = Text{
	English: "Who is like unto God? Who can withstand the sword of Saint Michael?",
	Latin:   "Quis ut Deus? Quis résistet Michaëlis gladió?",
}

// The nine choirs, highest to lowest.
var salutations = []Salutation{
	{
		Choir:      "Seraphim",
		ChoirLatin: "Séraphim",
		Prayer: Text{
			English: "By the intercession of Saint Michael and the celestial Choir of Seraphim, " +
				"may the Lord make us worthy to burn with the fire of perfect charity. Amen.",
			Latin: "Per intercessiónem Sancti Michaëlis et cappéllæ Séraphim cœléstis, " +
				"Dóminus nos dignos effíciat incéndi igne caritátis perféctæ. Amen.",
		},
	},
	{
		Choir:      "Cherubim",
		ChoirLatin: "Chérubim",
		Prayer: Text{
			English: "By the intercession of Saint Michael and the celestial Choir of Cherubim, " +
				"may the Lord vouchsafe to grant us grace to leave the ways of wickedness " +
				"to run in the paths of Christian perfection. Amen.",
			Latin: "Per intercessiónem Sancti Michaëlis et cappéllæ Chérubim cœléstis, " +
				"Dóminus nobis grátiam relínquere vias peccáti det et in vias " +
				"perfectiónis Christiánæ decúrrere. Amen.",
		},
	},
	{
		Choir:      "Thrones",
		ChoirLatin: "Thronórum",
		Prayer: Text{
			English: "By the intercession of Saint Michael and the celestial Choir of Thrones, " +
				"may the Lord infuse into our hearts a true and sincere spirit of humility. Amen.",
			Latin: "Per intercessiónem Sancti Michaëlis et cappéllæ Thronórum cœléstis, " +
				"infúndat Dóminus córdibus nostris spíritum humilitátis verum sincerúmque. Amen.",
		},
	},
	{
		Choir:      "Dominations",
		ChoirLatin: "Dominatiónum",
		Prayer: Text{
			English: "By the intercession of Saint Michael and the celestial Choir of Dominations, " +
				"may the Lord give us grace to govern our senses and subdue our unruly passions. Amen.",
			Latin: "Per intercessiónem Sancti Michaëlis et cappéllæ Dominatiónum cœléstis, " +
				"Dóminus nobis grátiam det sensus gubernáre et carnem petulántem superáre. Amen.",
		},
	},
	{
		Choir:      "Virtues",
		ChoirLatin: "Virtútum",
		Prayer: Text{
			English: "By the intercession of Saint Michael and the celestial Choir of Virtues, " +
				"may the Lord preserve us from evil and suffer us not to fall into temptation. Amen.",
			Latin: "Per intercessiónem Sancti Michaëlis et cappéllæ Virtútum cœléstis, " +
				"Dóminus nos a malo et cadéndo in tentatiónem consérvet. Amen.",
		},
	},
	{
		Choir:      "Powers",
		ChoirLatin: "Potestátum",
		Prayer: Text{
			English: "By the intercession of Saint Michael and the celestial Choir of Powers, " +
				"may the Lord vouchsafe to protect our souls against the snares and temptations " +
				"of the devil. Amen.",
			Latin: "Per intercessiónem Sancti Michaëlis et cappéllæ Potestátum cœléstis, " +
				"Dóminus ánimas nostras contra insídias et tentatiónes diáboli deféndat. Amen.",
		},
	},
	{
		Choir:      "Principalities",
		ChoirLatin: "Principatórum",
		Prayer: Text{
			English: "By the intercession of Saint Michael and the celestial Choir of Principalities, " +
				"may God fill our souls with a true spirit of obedience. Amen.",
			Latin: "Per intercessiónem Sancti Michaëlis et cappéllæ Principatórum cœléstis, " +
				"Dóminus ánimas nostras spíritu vero obœdiéntiæ ímpleat. Amen.",
		},
	},
	{
		Choir:      "Archangels",
		ChoirLatin: "Archangelórum",
		Prayer: Text{
			English: "By the intercession of Saint Michael and the celestial Choir of Archangels, " +
				"may the Lord give us perseverance in faith and in all good works, " +
				"in order that we gain the glory of Paradise. Amen.",
			Latin: "Per intercessiónem Sancti Michaëlis et cappéllæ Archangelórum cœléstis, " +
				"Dóminus nobis constántiam in fide et óminibus opéribus bonis det, " +
				"ut glóriam paradísi obtineámus. Amen.",
		},
	},
	{
		Choir:      "Angels",
		ChoirLatin: "Angelórum",
		Prayer: Text{
			English: "By the intercession of Saint Michael and the celestial Choir of Angels, " +
				"may the Lord grant us to be protected by them in this mortal life " +
				"and conducted hereafter to eternal glory. Amen.",
			Latin: "Per intercessiónem Sancti Michaëlis et cappéllæ Angelórum cœléstis, " +
				"Dóminus nos ab eis in hac vita mortále conservári det " +
				"et in vitam futúram perdúci. Amen.",
		},
	},
}

// One closing Our Father is keyed for each of these, in order.
var dedications = []Dedication{
	{Name: "Saint Michael"},
	{Name: "Saint Gabriel"},
	{Name: "Saint Raphael"},
	{Name: "Our Guardian Angel"},
}
