package symbols

// Category is one named group of math commands sharing an arity class.
// The grouping mirrors the KaTeX support table; a name may occur in several
// categories.
type Category struct {
	Name  string
	Arity Arity
	Names []string
}

// Categories lists every source table of the catalog. Line breaks inside the
// tables follow the column layout of the KaTeX documentation.
var Categories = []Category{
	{"accents", One, []string{
		"tilde", "mathring",
		"widetilde", "overgroup",
		"utilde", "undergroup",
		"acute", "vec", "Overrightarrow",
		"bar", "overleftarrow", "overrightarrow",
		"breve", "underleftarrow", "underrightarrow",
		"check", "overleftharpoon", "overrightharpoon",
		"dot", "overleftrightarrow", "overbrace",
		"ddot", "underleftrightarrow", "underbrace",
		"grave", "overline", "overlinesegment",
		"hat", "underline", "underlinesegment",
		"widehat", "widecheck",
	}},
	{"delimiters", Zero, []string{
		"lparen", "rparen", "lceil", "rceil", "uparrow",
		"lbrack", "rbrack", "lfloor", "rfloor", "downarrow", "updownarrow",
		"langle", "rangle", "lgroup", "rgroup", "Uparrow",
		"vert", "ulcorner", "urcorner", "Downarrow",
		"Vert", "llcorner", "lrcorner", "Updownarrow",
		"lvert", "rvert", "lVert", "rVert", "backslash",
		"lang", "rang", "lt", "gt",
	}},
	{"delimiter sizing", Zero, []string{
		"left", "big", "bigl", "bigm", "bigr",
		"middle", "Big", "Bigl", "Bigm", "Bigr",
		"right", "bigg", "biggl", "biggm", "biggr",
		"Bigg", "Biggl", "Biggm", "Biggr",
	}},
	{"greek letters", Zero, []string{
		"Alpha", "Beta", "Gamma", "Delta",
		"Epsilon", "Zeta", "Eta", "Theta",
		"Iota", "Kappa", "Lambda", "Mu",
		"Nu", "Xi", "Omicron", "Pi",
		"Sigma", "Tau", "Upsilon", "Phi",
		"Chi", "Psi", "Omega",
		"varGamma", "varDelta", "varTheta", "varLambda",
		"varXi", "varPi", "varSigma", "varUpsilon",
		"varPhi", "varPsi", "varOmega",
		"alpha", "beta", "gamma", "delta",
		"epsilon", "zeta", "eta", "theta",
		"iota", "kappa", "lambda", "mu",
		"nu", "xi", "omicron", "pi",
		"rho", "sigma", "tau", "upsilon",
		"phi", "chi", "psi", "omega",
		"varepsilon", "varkappa", "vartheta", "thetasym",
		"varpi", "varrho", "varsigma", "varphi",
		"digamma",
	}},
	{"other letters", Zero, []string{
		"imath", "nabla", "Im", "Reals",
		"jmath", "partial", "image", "wp",
		"aleph", "Game", "Bbbk", "weierp",
		"alef", "Finv", "N", "Z",
		"alefsym", "cnums", "natnums",
		"beth", "Complex", "R",
		"gimel", "ell", "Re",
		"daleth", "hbar", "real",
		"eth", "hslash", "reals",
	}},
	{"annotation", One, []string{
		"cancel", "overbrace",
		"bcancel", "underbrace",
		"xcancel", "not =",
		"sout", "boxed",
		"tag", "tag*",
	}},
	{"vertical layout", Zero, []string{"atop"}},
	{"vertical layout", Two, []string{"stackrel", "overset", "underset", "raisebox"}},
	{"overlap", One, []string{"mathllap", "mathrlap", "mathclap", "llap", "rlap", "clap", "smash"}},
	{"spacing", Zero, []string{
		"thinspace", "medspace", "thickspace", "enspace",
		"quad", "qquad", "negthinspace", "negmedspace",
		"nobreakspace", "negthickspace",
	}},
	{"spacing", One, []string{
		"kern", "mkern", "mskip", "hskip",
		"hspace", "hspace*", "phantom", "hphantom", "vphantom",
	}},
	{"logic and set theory", Zero, []string{
		"forall", "complement", "therefore", "emptyset",
		"exists", "subset", "because", "empty",
		"exist", "supset", "mapsto", "varnothing",
		"nexists", "mid", "to", "implies",
		"in", "land", "gets", "impliedby",
		"isin", "lor", "leftrightarrow", "iff",
		"notin", "ni", "notni", "neg", "lnot",
	}},
	{"big operators", Zero, []string{
		"sum", "prod", "bigotimes", "bigvee",
		"int", "coprod", "bigoplus", "bigwedge",
		"iint", "intop", "bigodot", "bigcap",
		"iiint", "smallint", "biguplus", "bigcup",
		"oint", "oiint", "oiiint", "bigsqcup",
	}},
	{"binary operators", Zero, []string{
		"cdot", "gtrdot", "pmod",
		"cdotp", "intercal", "pod",
		"centerdot", "land", "rhd",
		"circ", "leftthreetimes", "rightthreetimes",
		"amalg", "circledast", "ldotp", "rtimes",
		"And", "circledcirc", "lor", "setminus",
		"ast", "circleddash", "lessdot", "smallsetminus",
		"barwedge", "Cup", "lhd", "sqcap",
		"bigcirc", "cup", "ltimes", "sqcup",
		"bmod", "curlyvee", "times",
		"boxdot", "curlywedge", "mp", "unlhd",
		"boxminus", "div", "odot", "unrhd",
		"boxplus", "divideontimes", "ominus", "uplus",
		"boxtimes", "dotplus", "oplus", "vee",
		"bullet", "doublebarwedge", "otimes", "veebar",
		"Cap", "doublecap", "oslash", "wedge",
		"cap", "doublecup", "pm", "plusmn", "wr",
	}},
	{"fractions", Zero, []string{"over", "above"}},
	{"fractions", Two, []string{"frac", "dfrac", "tfrac", "cfrac", "genfrac"}},
	{"binomial coefficients", Zero, []string{"choose"}},
	{"binomial coefficients", Two, []string{"binom", "dbinom", "tbinom", "brace", "brack"}},
	{"math operators", Zero, []string{
		"arcsin", "cotg", "ln", "det",
		"arccos", "coth", "log", "gcd",
		"arctan", "csc", "sec", "inf",
		"arctg", "ctg", "sin", "lim",
		"arcctg", "cth", "sinh", "liminf",
		"arg", "deg", "sh", "limsup",
		"ch", "dim", "tan", "max",
		"cos", "exp", "tanh", "min",
		"cosec", "hom", "tg", "Pr",
		"cosh", "ker", "th", "sup",
		"cot", "lg", "argmax",
		"argmin", "limits",
	}},
	{"math operators", One, []string{"operatorname"}},
	{"sqrt", One, []string{"sqrt"}},
	{"relations", Zero, []string{
		"eqcirc", "lesseqgtr", "sqsupset",
		"eqcolon", "lesseqqgtr", "sqsupseteq",
		"Eqcolon", "lessgtr", "Subset",
		"eqqcolon", "lesssim", "subset",
		"approx", "Eqqcolon", "ll", "subseteq", "sube",
		"approxeq", "eqsim", "lll", "subseteqq",
		"asymp", "eqslantgtr", "llless", "succ",
		"backepsilon", "eqslantless", "lt", "succapprox",
		"backsim", "equiv", "mid", "succcurlyeq",
		"backsimeq", "fallingdotseq", "models", "succeq",
		"between", "frown", "multimap", "succsim",
		"bowtie", "ge", "owns", "Supset",
		"bumpeq", "geq", "parallel", "supset",
		"Bumpeq", "geqq", "perp", "supseteq",
		"circeq", "geqslant", "pitchfork", "supseteqq",
		"colonapprox", "gg", "prec", "thickapprox",
		"Colonapprox", "ggg", "precapprox", "thicksim",
		"coloneq", "gggtr", "preccurlyeq", "trianglelefteq",
		"Coloneq", "gt", "preceq", "triangleq",
		"coloneqq", "gtrapprox", "precsim", "trianglerighteq",
		"Coloneqq", "gtreqless", "propto", "varpropto",
		"colonsim", "gtreqqless", "risingdotseq", "vartriangle",
		"Colonsim", "gtrless", "shortmid", "vartriangleleft",
		"cong", "gtrsim", "shortparallel", "vartriangleright",
		"curlyeqprec", "in", "sim", "vcentcolon",
		"curlyeqsucc", "Join", "simeq", "vdash",
		"dashv", "le", "smallfrown", "vDash",
		"dblcolon", "leq", "smallsmile", "Vdash",
		"doteq", "leqq", "smile", "Vvdash",
		"Doteq", "leqslant", "sqsubset",
		"doteqdot", "lessapprox", "sqsubseteq",
	}},
	{"negated relations", Zero, []string{
		"gnapprox", "ngeqslant", "nsubseteq", "precneqq",
		"gneq", "ngtr", "nsubseteqq", "precnsim",
		"gneqq", "nleq", "nsucc", "subsetneq",
		"gnsim", "nleqq", "nsucceq", "subsetneqq",
		"gvertneqq", "nleqslant", "nsupseteq", "succnapprox",
		"lnapprox", "nless", "nsupseteqq", "succneqq",
		"lneq", "nmid", "ntriangleleft", "succnsim",
		"lneqq", "notin", "ntrianglelefteq", "supsetneq",
		"lnsim", "notni", "ntriangleright", "supsetneqq",
		"lvertneqq", "nparallel", "ntrianglerighteq", "varsubsetneq",
		"ncong", "nprec", "nvdash", "varsubsetneqq",
		"ne", "npreceq", "nvDash", "varsupsetneq",
		"neq", "nshortmid", "nVDash", "varsupsetneqq",
		"ngeq", "nshortparallel", "nVdash",
		"ngeqq", "nsim", "precnapprox",
	}},
	{"arrows", Zero, []string{
		"circlearrowleft", "leftharpoonup", "rArr",
		"circlearrowright", "leftleftarrows", "rarr",
		"curvearrowleft", "leftrightarrow", "restriction",
		"curvearrowright", "Leftrightarrow", "rightarrow",
		"Darr", "leftrightarrows", "Rightarrow",
		"dArr", "leftrightharpoons", "rightarrowtail",
		"darr", "leftrightsquigarrow", "rightharpoondown",
		"dashleftarrow", "Lleftarrow", "rightharpoonup",
		"dashrightarrow", "longleftarrow", "rightleftarrows",
		"downarrow", "Longleftarrow", "rightleftharpoons",
		"Downarrow", "longleftrightarrow", "rightrightarrows",
		"downdownarrows", "Longleftrightarrow", "rightsquigarrow",
		"downharpoonleft", "longmapsto", "Rrightarrow",
		"downharpoonright", "longrightarrow", "Rsh",
		"gets", "Longrightarrow", "searrow",
		"Harr", "looparrowleft", "swarrow",
		"hArr", "looparrowright", "to",
		"harr", "Lrarr", "twoheadleftarrow",
		"hookleftarrow", "lrArr", "twoheadrightarrow",
		"hookrightarrow", "lrarr", "Uarr",
		"iff", "Lsh", "uArr",
		"impliedby", "mapsto", "uarr",
		"implies", "nearrow", "uparrow",
		"Larr", "nleftarrow", "Uparrow",
		"lArr", "nLeftarrow", "updownarrow",
		"larr", "nleftrightarrow", "Updownarrow",
		"leadsto", "nLeftrightarrow", "upharpoonleft",
		"leftarrow", "nrightarrow", "upharpoonright",
		"Leftarrow", "nRightarrow", "upuparrows",
		"leftarrowtail", "nwarrow", "leftharpoondown", "Rarr",
	}},
	{"extensible arrows", One, []string{
		"xleftarrow", "xrightarrow",
		"xLeftarrow", "xRightarrow",
		"xleftrightarrow", "xLeftrightarrow",
		"xhookleftarrow", "xhookrightarrow",
		"xtwoheadleftarrow", "xtwoheadrightarrow",
		"xleftharpoonup", "xrightharpoonup",
		"xleftharpoondown", "xrightharpoondown",
		"xleftrightharpoons", "xrightleftharpoons",
		"xtofrom", "xmapsto",
		"xlongequal",
	}},
	{"class assignment", One, []string{
		"mathbin", "mathclose", "mathinner", "mathop",
		"mathopen", "mathord", "mathpunct", "mathrel",
	}},
	{"color", Two, []string{"color", "textcolor", "colorbox"}},
	{"font", Zero, []string{"rm", "bf", "it", "sf", "tt"}},
	{"font", One, []string{
		"mathrm", "mathbf", "mathit",
		"mathnormal", "textbf", "textit",
		"textrm", "bold", "Bbb",
		"textnormal", "boldsymbol", "mathbb",
		"text", "bm", "frak",
		"mathsf", "mathtt", "mathfrak",
		"textsf", "texttt", "mathcal", "mathscr",
	}},
	{"size", Zero, []string{
		"Huge", "huge", "LARGE", "Large", "large",
		"normalsize", "small", "footnotesize", "scriptsize", "tiny",
	}},
	{"style", Zero, []string{
		"displaystyle", "textstyle", "scriptstyle", "scriptscriptstyle",
		"limits", "nolimits", "verb",
	}},
	{"symbols and punctuation", Zero, []string{
		"cdots", "LaTeX",
		"ddots", "TeX",
		"ldots", "nabla",
		"vdots", "infty",
		"dotsb", "infin",
		"dotsc", "checkmark",
		"dotsi", "dag",
		"dotsm", "dagger",
		"dotso",
		"sdot", "ddag",
		"mathellipsis", "ddagger",
		"Box", "Dagger",
		"lq", "square", "angle",
		"blacksquare", "measuredangle",
		"rq", "triangle", "sphericalangle",
		"triangledown", "top",
		"triangleleft", "bot",
		"triangleright",
		"colon", "bigtriangledown",
		"backprime", "bigtriangleup", "pounds",
		"prime", "blacktriangle", "mathsterling",
		"blacktriangledown",
		"blacktriangleleft", "yen",
		"blacktriangleright", "surd",
		"diamond", "degree",
		"Diamond",
		"lozenge", "mho",
		"blacklozenge", "diagdown",
		"star", "diagup",
		"bigstar", "flat",
		"clubsuit", "natural",
		"copyright", "clubs", "sharp",
		"circledR", "diamondsuit", "heartsuit",
		"diamonds", "hearts",
		"circledS", "spadesuit", "spades",
		"maltese",
	}},
}

// DefaultEnvironments are the choices offered by the \begin snippet.
var DefaultEnvironments = []string{
	"aligned", "alignedat", "array", "bmatrix", "Bmatrix", "cases",
	"darray", "dcases", "gathered", "matrix", "pmatrix", "vmatrix", "Vmatrix",
}
