package template

// DefaultPage is one pre-written page of a built-in template.
type DefaultPage struct {
	PageNumber          int
	ProfessionTitle     string
	TextTemplate        string
	ImagePromptTemplate string
}

// DefaultTemplate is a built-in book template seeded at startup.
type DefaultTemplate struct {
	Name        string
	Description string
	Pages       []DefaultPage
}

// Defaults returns the built-in templates in seed order.
func Defaults() []DefaultTemplate {
	return []DefaultTemplate{whenGrowsUp, snowWhite, cricketChampion, cinderella, sportsDay}
}

var whenGrowsUp = DefaultTemplate{
	Name:        "When {name} Grows Up",
	Description: "A 24-page personalized book featuring different professions the child might pursue when they grow up",
	Pages: []DefaultPage{
		{1, "ASTRONAUT",
			"When {name} grows up,\n{he_she} just might be,\nan astronaut floating free.\nAmong the stars and planets bright,\nexploring space both day and night!",
			"Watercolor illustration of a {age} year old {gender} child named {name} dressed as an astronaut in a white spacesuit with helmet, floating in space surrounded by colorful planets, stars, and galaxies, dreamy cosmic background, children's book art style, inspiring and adventurous mood"},
		{2, "DOCTOR",
			"Perhaps {name} will wear a white coat,\nwith a stethoscope around {his_her} throat.\nHelping people feel better each day,\nmaking all the sickness go away!",
			"Watercolor illustration of a {age} year old {gender} child named {name} wearing a white doctor's coat and stethoscope, standing in a cheerful hospital room, holding a medical chart, warm and caring expression, children's book art style, soft colors, compassionate and professional mood"},
		{3, "TEACHER",
			"Maybe {name} will teach and guide,\nwith wisdom, patience, and pride.\nSharing knowledge every day,\nhelping students find their way!",
			"Watercolor illustration of a {age} year old {gender} child named {name} as a teacher standing in front of a colorful classroom with a chalkboard, books, and happy students, holding a book or pointer, kind and enthusiastic expression, children's book art style, bright educational setting"},
		{4, "FIREFIGHTER",
			"When {name} grows up brave and strong,\n{he_she} might fight fires all day long.\nWith a helmet and a hose so bright,\nsaving people day and night!",
			"Watercolor illustration of a {age} year old {gender} child named {name} wearing firefighter gear with helmet and protective coat, holding a fire hose, standing in front of a fire truck, brave and heroic expression, children's book art style, action-packed scene with warm colors"},
		{5, "CHEF",
			"Perhaps {name} will cook and bake,\ndelicious meals and birthday cake.\nWith a chef's hat upon {his_her} head,\nmaking food that's perfectly spread!",
			"Watercolor illustration of a {age} year old {gender} child named {name} wearing a white chef's hat and apron in a professional kitchen, surrounded by fresh ingredients, pots, and pans, mixing or cooking something delicious, joyful expression, children's book art style, warm kitchen atmosphere"},
		{6, "PILOT",
			"Maybe {name} will soar and fly,\nhigh above in the bright blue sky.\nPiloting planes from here to there,\ntraveling everywhere with care!",
			"Watercolor illustration of a {age} year old {gender} child named {name} in a pilot's uniform with cap and wings badge, sitting in an airplane cockpit with controls and dials, confident smile, view of clouds through windows, children's book art style, adventurous aviation scene"},
		{7, "VETERINARIAN",
			"When {name} grows up with gentle care,\n{he_she} might help animals everywhere.\nA vet who heals with loving touch,\nmaking sure they don't hurt much!",
			"Watercolor illustration of a {age} year old {gender} child named {name} wearing a veterinarian coat, gently examining a cute puppy or kitten in a veterinary clinic, surrounded by animal toys and medical tools, caring and gentle expression, children's book art style, soft warm colors"},
		{8, "ARMY OFFICER",
			"Maybe one day, {name} will guide a team,\nwith discipline and a noble dream.\n{he_she_cap}'ll serve with honor, lead with grace,\na hero in every time and place.",
			"Watercolor illustration of a {age} year old {gender} child named {name} wearing army officer uniform with cap, standing proudly with hands behind back, military backdrop with subtle camouflage colors, determined and noble expression, children's book art style, respectful and dignified tone"},
		{9, "WILDLIFE CONSERVATIONIST",
			"Perhaps {name} will protect wild lands,\nhelping animals with gentle hands.\n{he_she_cap}'ll plant new trees and guard each stream,\nkeeping Earth safe like in a dream.",
			"Watercolor illustration of a {age} year old {gender} child named {name} in outdoor conservation gear with hat, holding a cute wild animal (sloth, baby panda, or bird), standing in a lush forest setting, caring and protective expression, children's book art style, natural green tones and wildlife elements"},
		{10, "MARTIAL ARTIST",
			"Perhaps {name} will master Karate,\ndisciplined and wise.\nMastering each move\nwith sharp, focused eyes.\nWith every punch, with every block,\n{he_she}'ll grow in power and never stop.",
			"Watercolor illustration of a {age} year old {gender} child named {name} wearing a white karate gi with black belt, in a powerful martial arts stance with fists positioned, dojo background, focused and determined expression, children's book art style, dynamic action pose with subtle motion effects"},
		{11, "DETECTIVE",
			"Perhaps {name} will wear a long dark coat,\nlook around carefully and study a note.\nNo mystery too big or clue too small,\n{he_she}'ll be the best detective of all!",
			"Watercolor illustration of a {age} year old {gender} child named {name} wearing a detective's trench coat and hat, holding a magnifying glass and examining clues, mysterious urban backdrop with vintage detective aesthetic, clever and observant expression, children's book art style, muted detective colors with warm highlights"},
		{12, "MAGICIAN",
			"When {name} grows up,\n{he_she} just might be,\na wizard of great mystery.\nPulling rabbits, cards that fly,\nwith a wand held proudly to the sky!",
			"Watercolor illustration of a {age} year old {gender} child named {name} wearing a magician's hat and cape with stars, holding a magic wand with sparkles and magical effects, rabbit and playing cards floating around, stage with mystical atmosphere, excited and mysterious expression, children's book art style, deep blues and magical purple tones with golden sparkles"},
		{13, "ARTIST",
			"Maybe {name} will paint and draw,\ncreating art that all will adore.\nWith brushes, colors bright and true,\nmaking masterpieces just for you!",
			"Watercolor illustration of a {age} year old {gender} child named {name} wearing a paint-splattered apron, holding a palette and paintbrush, standing in front of an easel with a colorful painting, art studio setting with canvases and art supplies, creative and inspired expression, children's book art style, vibrant artistic colors"},
		{14, "MUSICIAN",
			"When {name} grows up with music in heart,\n{he_she} might play each note like art.\nWith instruments and melodies sweet,\nmaking rhythms and dancing beats!",
			"Watercolor illustration of a {age} year old {gender} child named {name} playing a musical instrument (guitar, piano, or violin), surrounded by musical notes floating in the air, concert or music room setting, joyful and passionate expression, children's book art style, harmonious warm colors"},
		{15, "SCIENTIST",
			"Perhaps {name} will discover and explore,\nfinding answers and so much more.\nWith test tubes, microscopes in sight,\nunlocking secrets day and night!",
			"Watercolor illustration of a {age} year old {gender} child named {name} wearing a white lab coat and safety goggles, conducting a colorful chemistry experiment in a laboratory, beakers and scientific equipment around, curious and intelligent expression, children's book art style, scientific blue and green tones with bubbling reactions"},
		{16, "ENGINEER",
			"Maybe {name} will build and design,\nbridges, buildings so divine.\nWith blueprints, tools, and creative mind,\nmaking structures of every kind!",
			"Watercolor illustration of a {age} year old {gender} child named {name} wearing a hard hat and holding blueprints or drafting tools, standing at a construction site with building structures in background, confident and innovative expression, children's book art style, architectural scene with construction equipment"},
		{17, "ATHLETE",
			"When {name} grows up strong and fast,\n{he_she} might be an athlete unsurpassed.\nRunning, jumping, playing the game,\nwinning medals and sporting fame!",
			"Watercolor illustration of a {age} year old {gender} child named {name} in athletic sportswear, in dynamic running or jumping pose on a track or sports field, medal around neck, stadium background, energetic and triumphant expression, children's book art style, active sports scene with bright athletic colors"},
		{18, "MARINE BIOLOGIST",
			"Perhaps {name} will dive deep in the sea,\nstudying fish and coral with glee.\nWith ocean creatures big and small,\nprotecting the underwater world for all!",
			"Watercolor illustration of a {age} year old {gender} child named {name} in scuba diving gear with mask and snorkel, swimming underwater surrounded by colorful fish, coral reefs, dolphins, and sea turtles, underwater scene, fascinated and adventurous expression, children's book art style, oceanic blues and vibrant marine life"},
		{19, "FASHION DESIGNER",
			"Maybe {name} will create and sew,\nfashion styles that steal the show.\nWith fabrics, patterns, colors bright,\ndesigning clothes that fit just right!",
			"Watercolor illustration of a {age} year old {gender} child named {name} in a stylish outfit, standing at a designer's table with fabric swatches, sketches, and a dress form, fashion studio setting with creative atmosphere, confident and artistic expression, children's book art style, fashionable colors and elegant design elements"},
		{20, "ARCHITECT",
			"When {name} grows up with vision clear,\n{he_she} might design buildings far and near.\nDrawing plans for homes and towers tall,\ncreating beautiful spaces for all!",
			"Watercolor illustration of a {age} year old {gender} child named {name} wearing professional attire, working at a drafting table with architectural models and blueprints, modern buildings in background, thoughtful and creative expression, children's book art style, architectural scene with geometric elements"},
		{21, "PHOTOGRAPHER",
			"Perhaps {name} will capture moments dear,\nthrough a camera lens so clear.\nSnapping pictures far and wide,\npreserving memories with pride!",
			"Watercolor illustration of a {age} year old {gender} child named {name} holding a professional camera up to eye level, various beautiful scenes in background (nature, people, events), photography studio or outdoor setting, focused and artistic expression, children's book art style, photographic elements with warm natural lighting"},
		{22, "BUSINESS LEADER",
			"Maybe {name} will lead with might,\nmaking decisions wise and right.\nRunning companies big and small,\ninspiring teams and giving their all!",
			"Watercolor illustration of a {age} year old {gender} child named {name} in professional business attire at a desk with laptop, charts, and office setting, confident leadership pose, modern office background, determined and professional expression, children's book art style, business environment with warm corporate colors"},
		{23, "WRITER",
			"When {name} grows up with words to share,\n{he_she} might write stories everywhere.\nBooks and poems, tales untold,\nadventures new and legends old!",
			"Watercolor illustration of a {age} year old {gender} child named {name} sitting at a cozy writing desk with books, papers, and a pen or typewriter, surrounded by floating story characters and imaginative elements, library or study setting, thoughtful and creative expression, children's book art style, warm literary atmosphere"},
		{24, "DREAMER",
			"But whatever {name} may choose to be,\n{he_she}'ll do it wonderfully!\nWith dreams so big and heart so true,\nthe whole world waits for all you'll do!",
			"Watercolor illustration of a {age} year old {gender} child named {name} standing confidently with arms spread wide, surrounded by floating symbols of all the professions (stethoscope, paint brush, camera, rocket, books, etc.), dreamy starry sky background, hopeful and inspired expression, children's book art style, magical and inspiring scene with rainbow of colors"},
	},
}

var snowWhite = DefaultTemplate{
	Name:        "Snow White and the Kind-Hearted Child",
	Description: "A gentle Snow White retelling where {name} faces unkind sisters and a cruel stepmother, but finds courage, friends, and a kind prince.",
	Pages: []DefaultPage{
		{1, "Once Upon a Time",
			"Long ago, in a peaceful kingdom, there lived a kind child named {name}. {He_She} had two jealous sisters and a cruel stepmother who treated {him_her} badly, making {him_her} do all the chores while they rested and laughed.",
			"Watercolor illustration of a {age} year old {gender} child named {name} in simple clothes, carrying a heavy basket in a grand castle kitchen while two fancy-dressed sisters and a stern stepmother point and whisper, warm fairy-tale lighting, cozy storybook style."},
		{2, "A Heart of Kindness",
			"Even though {name}'s sisters were unkind, {he_she} stayed gentle and brave. Whenever they snapped at {him_her}, {name} took a deep breath and remembered that kindness is a special kind of magic no one can take away.",
			"{age} year old {gender} child {name} smiling softly while feeding birds at a castle window, two sisters frowning in the background, soft pastel colors, classic fairy-tale illustration, focus on {name}'s kind expression."},
		{3, "Into the Forest",
			"One day, the stepmother grew so jealous of {name}'s goodness that she ordered {him_her} to leave the castle. With tears in {his_her} eyes but courage in {his_her} heart, {name} walked into the deep green forest, not knowing what would happen next.",
			"{age} year old {gender} child {name} walking into a tall green forest with rays of sunlight shining through the trees, small animals peeking out curiously, storybook watercolor style, mood of sadness turning to quiet hope."},
		{4, "The Little Cottage",
			"After a long walk, {name} found a tiny, cozy cottage hidden among the trees. Inside, everything was messy and dusty. {He_She} decided to clean and tidy the little home, humming softly to feel less afraid.",
			"Small cottage interior in the forest, {age} year old {gender} child {name} sweeping the floor, washing dishes, and opening windows, warm golden light coming in, seven tiny chairs and beds, classic fairy-tale illustration."},
		{5, "New Friends",
			"When the owners of the cottage came home, seven kind dwarfs, they were surprised to find their house sparkling clean. They listened to {name}'s story and promised, 'You can stay with us. We will be your family and keep you safe.'",
			"{age} year old {gender} child {name} sitting at a small wooden table with seven friendly dwarfs, all smiling kindly, cozy candlelight, wooden cottage interior, storybook watercolor style."},
		{6, "The Poisoned Gift",
			"Far away, the stepmother learned that {name} was still alive and happy. Disguised as an old woman, she brought a beautiful red apple to the cottage. Trusting others, {name} took a bite, and everything suddenly turned dark.",
			"An old woman in a cloak handing a shiny red apple to {age} year old {gender} child {name} at the cottage door, subtle hint of danger in the shadows, rich colors, classic fairy-tale mood."},
		{7, "Asleep in Glass",
			"The dwarfs were heartbroken. They gently laid {name} in a clear glass coffin on a soft hill, surrounded by flowers. Though {name} seemed asleep, {his_her} gentle face still looked full of hope and kindness.",
			"Glass coffin on a flowery hill, {age} year old {gender} child {name} lying peacefully inside with folded hands, seven dwarfs weeping nearby, forest animals gathered around, tender fairy-tale scene."},
		{8, "The Prince Arrives",
			"One day, a kind prince passed through the forest and saw {name}. He listened to the dwarfs and felt deep respect for {name}'s brave heart. As the coffin was moved, the apple piece slipped from {name}'s throat, and {he_she} woke up with a gentle gasp.",
			"Gentle prince on horseback near the glass coffin, {age} year old {gender} child {name} beginning to wake, dwarfs looking surprised and hopeful, bright forest clearing, romantic but child-friendly style."},
		{9, "A New Beginning",
			"{name} thanked the dwarfs for their love and courage. The prince said, 'I admire your kindness and strength, {name}. Would you like to come to my castle, where people will treat you the way you deserve?'",
			"{age} year old {gender} child {name} standing beside the prince, holding hands with a dwarf in farewell, forest path leading to a bright castle in the distance, hopeful storybook illustration."},
		{10, "Happily Ever After",
			"{name} went to the prince's castle, where {he_she} was finally treated with love and respect. {His_Her} unkind stepmother and sisters had to live with their choices, while {name}'s kindness shone brighter than ever. From that day on, {name} knew that being gentle and brave could change {his_her} story.",
			"Grand castle hall celebration, {age} year old {gender} child {name} dressed in royal clothes, smiling with the prince and new friends, warm golden light, joyful fairy-tale ending illustration."},
	},
}

var cricketChampion = DefaultTemplate{
	Name:        "Cricket Champion - Mastering Every Shot",
	Description: "A coaching-style book where {name} learns 10 classic cricket shots with clear posture and body-position tips.",
	Pages: []DefaultPage{
		{1, "Forward Defensive",
			"Today, {name} is learning the forward defensive shot. {He_She} stands with feet shoulder-width apart, eyes on the ball, front foot stepping forward. The bat comes down straight, close to the pad, blocking the ball safely under {his_her} eyes.",
			"{age} year old {gender} child {name} in cricket whites, helmet on, playing a perfect forward defensive: front foot forward, bat straight and close to pad, head still over the ball, side-on stance on a sunny ground."},
		{2, "Straight Drive",
			"Next, {name} practices the straight drive. {He_She} steps forward with the front foot, keeps {his_her} head still, and swings the bat straight down the line of the ball, sending it smoothly back past the bowler.",
			"{age} year old {gender} child {name} playing a straight drive, front knee bent, bat following through straight toward the bowler, head over the ball, front shoulder pointing down the pitch, clear coaching illustration."},
		{3, "Cover Drive",
			"For the cover drive, {name} leans into the shot. {He_She} steps toward the off side with a bent front knee and drives the ball through the covers with a smooth arc, elbows high and head close to the line of the ball.",
			"{age} year old {gender} child {name} playing an elegant cover drive, front foot across to off side, bat following through high, ball flying through cover region, classic cricket coaching pose."},
		{4, "On Drive",
			"The on drive helps {name} play toward the leg side. {He_She} steps slightly toward mid-on, keeps the bat close to the pad, and swings through the line of the ball with a straight face, guiding it past the bowler.",
			"{age} year old {gender} child {name} playing an on drive toward mid-on, front foot pointing slightly to leg side, bat straight, wrists firm, balanced stance, detailed lower-body and head position."},
		{5, "Pull Shot",
			"For the pull shot, {name} waits for a short ball. {He_She} swivels on the back foot, keeps eyes level, and swings the bat horizontally. The front shoulder turns and {name} rolls {his_her} wrists to keep the ball down.",
			"{age} year old {gender} child {name} playing a pull shot off the back foot, body rotating, back foot anchored, front leg slightly lifted, bat horizontal, ball going toward mid-wicket, dynamic coaching-style pose."},
		{6, "Cut Shot",
			"With the cut shot, {name} attacks a wide, short ball. {He_She} steps back and across, lets the ball come close, then slices it square through the off side with a firm, controlled bat, keeping {his_her} head still.",
			"{age} year old {gender} child {name} playing a square cut, back foot across toward off stump, body slightly open, bat cutting across the ball toward point, clear line of shoulders, arms, and bat."},
		{7, "Sweep Shot",
			"Against spin, {name} kneels for the sweep shot. {He_She} gets low on one knee, stretches the front leg toward the pitch of the ball, and sweeps the bat in a smooth arc, keeping {his_her} head over the ball.",
			"{age} year old {gender} child {name} playing a classic sweep, front knee on the ground, back leg folded, bat sweeping low in front, head forward over the ball, spinner in the background."},
		{8, "Lofted Drive",
			"When it is safe to hit in the air, {name} uses the lofted drive. {He_She} steps forward with a strong base and swings the bat upward through the line, lifting the ball over the infield while still watching carefully.",
			"{age} year old {gender} child {name} playing a lofted drive, front foot planted firmly, bat following through high above the shoulder, ball flying over extra cover, stable lower body, expressive coaching style."},
		{9, "Back-Foot Defence",
			"For the back-foot defence, {name} moves back and across toward off stump. {He_She} lets the ball bounce, then meets it with a straight bat close to the body, using soft hands to drop the ball near {his_her} feet.",
			"{age} year old {gender} child {name} playing a back-foot defensive shot, back foot on the crease, front foot slightly forward, bat straight and close to pads, ball dropping near feet."},
		{10, "Late Cut",
			"Finally, {name} learns the late cut. {He_She} waits for the ball to arrive, then opens the bat face at the last moment, guiding it softly past the slips toward third man with gentle hands and precise timing.",
			"{age} year old {gender} child {name} playing a late cut, bat angled with soft hands, body slightly open, ball running down to third man, wicket-keeper and slips in background."},
	},
}

var cinderella = DefaultTemplate{
	Name:        "Cinderella and the Brave Heart",
	Description: "A Cinderella retelling where {name} overcomes unkindness from stepfamily and finds confidence, magic, and a caring prince.",
	Pages: []DefaultPage{
		{1, "Life in the Kitchen",
			"{name} lived with a sharp-tongued stepmother and two lazy stepsisters. While they bossed {him_her} around, {name} swept floors, washed dishes, and cooked meals, keeping {his_her} gentle heart safe inside.",
			"{age} year old {gender} child {name} in simple clothes cleaning a big old kitchen, two fancy stepsisters and a strict stepmother ordering {him_her} around, warm but slightly sad fairy-tale style."},
		{2, "Dreams by the Fireplace",
			"At night, {name} sat by the fireplace, looking at the glowing embers and dreaming of a kinder life. {He_She} whispered wishes into the smoke, hoping that one day, someone would see {his_her} true worth.",
			"{age} year old {gender} child {name} sitting by a fireplace in a small corner, soft orange light on {his_her} face, old broom and bucket nearby, dreamy fairy-tale atmosphere."},
		{3, "Invitation to the Ball",
			"One day, a royal invitation arrived: everyone in the kingdom was invited to a grand ball at the palace. {name}'s stepmother dressed {his_her} sisters in fancy gowns, laughing as she told {name} that {he_she} was far too dirty and plain to go.",
			"Royal messenger delivering a scroll in a hallway, two excited stepsisters twirling in half-finished dresses, {age} year old {gender} child {name} holding a simple apron, looking hopeful, stern stepmother nearby."},
		{4, "The Fairy Godmother",
			"After everyone left, {name} cried in the garden. Suddenly, a warm light appeared, and a fairy godmother smiled at {him_her}. 'Your kindness shines brighter than any dress,' she said. 'You shall go to the ball.'",
			"Magical fairy godmother with sparkling wand appearing before {age} year old {gender} child {name} in a garden, pumpkin and mice nearby, glowing soft blue and gold light, storybook style."},
		{5, "Magic Transformation",
			"With a flick of her wand, the fairy turned {name}'s rags into a shimmering outfit and glass shoes that fit perfectly. A pumpkin became a carriage, and the mice turned into horses. 'Be back by midnight,' she warned gently.",
			"{age} year old {gender} child {name} spinning in a glowing magical dress or suit, glass slippers shining, pumpkin transforming into a carriage, mice into horses, sparkling fairy dust everywhere."},
		{6, "At the Ball",
			"At the palace, everyone stared in wonder at {name}. The prince noticed {his_her} gentle smile and brave eyes. He asked {name} to dance, and together they glided across the floor like they had always been meant to meet.",
			"Grand palace ballroom, {age} year old {gender} child {name} dancing with a kind prince, chandeliers and guests in the background, warm golden colors, elegant fairy-tale scene."},
		{7, "Midnight Escape",
			"Suddenly, the great clock began to strike twelve. Remembering the fairy's warning, {name} thanked the prince and ran. On the palace steps, one glass shoe slipped off, but there was no time to turn back.",
			"{age} year old {gender} child {name} running down palace stairs at midnight, one glass slipper left behind, clock tower showing twelve, flowing dress or outfit, dramatic but child-friendly scene."},
		{8, "The Prince Searches",
			"The next day, the prince searched the kingdom with the glass shoe. He tried it on many people, but it never fit. He promised himself he would find the person whose kindness had touched his heart.",
			"Prince traveling in a carriage through villages, holding a glass slipper, trying it on different feet, people watching curiously, bright daytime fairy-tale illustration."},
		{9, "The Perfect Fit",
			"At last, the prince reached {name}'s home. The stepsisters tried to squeeze into the slipper, but it would not fit. When {name} gently tried it on, it slid perfectly over {his_her} foot, shining like it had always belonged there.",
			"Inside a modest room, prince kneeling to place glass slipper on {age} year old {gender} child {name}'s foot, stepsisters and stepmother shocked in the background, warm hopeful colors."},
		{10, "A Strong New Life",
			"{name} chose to leave the unkindness behind and start a new life at the palace. With the prince and new friends, {he_she} was finally treated with love and respect. {name} learned that {his_her} bravery and kindness were the strongest magic of all.",
			"Palace garden scene, {age} year old {gender} child {name} walking happily with the prince and new friends, flowers, fountains, and bright sky, peaceful fairy-tale ending."},
	},
}

var sportsDay = DefaultTemplate{
	Name:        "Sports Day Champion",
	Description: "{name} discovers ten different sports on school sports day and imagines becoming a champion in each one.",
	Pages: []DefaultPage{
		{1, "Sprinting Star",
			"On sports day, {name} lines up for the sprint race. {He_She} bends slightly forward, keeps arms loose, and focuses on the finish line. With each strong step, {name} feels faster and more confident.",
			"{age} year old {gender} child {name} sprinting on a school track, leaning slightly forward, arms pumping, knees lifting, cheering crowd and 'Sports Day' banner in background."},
		{2, "Football Hero",
			"Next comes football. {name} keeps {his_her} head up, taps the ball with gentle touches, and uses quick steps to move past defenders. A strong, clean kick sends the ball spinning toward the goal.",
			"{age} year old {gender} child {name} dribbling a football on a green field, defenders nearby, legs in motion, focused eyes on the ball, school sports ground setting."},
		{3, "Basketball Shooter",
			"In basketball, {name} bends {his_her} knees, keeps elbows under the ball, and aims softly at the hoop. With a smooth push and flick of the wrists, the ball arcs through the air toward the net.",
			"{age} year old {gender} child {name} shooting a basketball, knees bent, arms extended, ball in mid-air heading to the hoop, indoor school gym, bright colors."},
		{4, "Tennis Ace",
			"With a tennis racket, {name} stands side-on, feet apart, eyes on the ball. {He_She} swings smoothly, striking the ball in front of the body and following through high, sending it neatly over the net.",
			"{age} year old {gender} child {name} playing tennis on a court, side-on stance, racket following through, ball crossing the net, sunny outdoor scene."},
		{5, "Swimming Dolphin",
			"In the pool, {name} reaches arms forward, kicks with straight legs, and keeps breathing calmly to the side. Each stroke feels smoother as {he_she} glides through the water like a fast, friendly dolphin.",
			"{age} year old {gender} child {name} swimming in a clean blue pool, freestyle stroke, face turning to breathe, lane lines visible, bright indoor lighting."},
		{6, "Gymnast on the Beam",
			"On the balance beam, {name} places one foot carefully in front of the other, arms stretched out wide. Slow, steady breaths help {him_her} stay calm as {he_she} takes graceful steps across.",
			"{age} year old {gender} child {name} balancing on a gymnastics beam, arms out for balance, focused face, coach and mats in the background, bright gym setting."},
		{7, "Badminton Flyer",
			"With a badminton racket, {name} watches the shuttle closely. {He_She} moves light on {his_her} feet, jumps for a high shot, and swings the racket with a quick snap to send the shuttle back over the net.",
			"{age} year old {gender} child {name} playing badminton indoors, jumping to hit a shuttlecock, racket arm stretched up, net and court lines visible."},
		{8, "Hockey Warrior",
			"In hockey, {name} bends knees, keeps the stick low, and uses quick pushes to guide the ball. Strong legs and sharp eyes help {him_her} move down the field like a true team warrior.",
			"{age} year old {gender} child {name} playing field hockey, slightly crouched, stick controlling the ball, teammates in background, school sports field."},
		{9, "Long Jump Flyer",
			"For long jump, {name} runs with powerful steps, then plants one foot on the board and swings arms forward. {He_She} lifts off the ground, flying through the air before landing softly in the sand.",
			"{age} year old {gender} child {name} mid-air in a long jump, knees up, arms forward, sand pit below, white takeoff board visible, outdoor track setting."},
		{10, "All-Round Champion",
			"At the end of sports day, {name} feels tired but proud. {He_She} has tried running, football, basketball, tennis, swimming, gymnastics, badminton, hockey, and long jump. With practice and heart, {name} knows {he_she} can become a champion in any sport {he_she} loves.",
			"{age} year old {gender} child {name} standing proudly with a small medal or ribbon, various sports equipment (football, racket, bat, ball) around, school field in background, bright celebratory children's book style."},
	},
}
