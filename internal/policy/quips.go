package policy

// XMPPNotJabber is the canned interjection for the "jabber" trigger.
const XMPPNotJabber = "I'd just like to interject for a moment. What you're referring to as Jabber, is in fact, XMPP, or as I've recently taken to calling it, XMPP not Jabber. Jabber is not an internet protocol unto itself, but rather another proprietary product owned by Cisco. XMPP instead is a fully functioning free protocol made useful by standardization and extensibility.\n"

// dadJokes is the pool for the "dad" trigger and random interjections.
var dadJokes = []string{
	"I'm tired of following my dreams. I'm just going to ask them where they are going and meet up with them later.",
	"Did you hear about the guy whose whole left side was cut off? He's all right now.",
	"Why didn’t the skeleton cross the road? Because he had no guts.",
	"What did one nut say as he chased another nut?  I'm a cashew!",
	"Where do fish keep their money? In the riverbank",
	"I accidentally took my cats meds last night. Don’t ask meow.",
	"Chances are if you' ve seen one shopping center, you've seen a mall.",
	"Dermatologists are always in a hurry. They spend all day making rash decisions. ",
	"I knew I shouldn't steal a mixer from work, but it was a whisk I was willing to take.",
	"I won an argument with a weather forecaster once. His logic was cloudy...",
	"How come the stadium got hot after the game? Because all of the fans left.",
	"\"Why do seagulls fly over the ocean?\" \"Because if they flew over the bay, we'd call them bagels.\"",
	"Why was it called the dark ages? Because of all the knights. ",
	"A steak pun is a rare medium well done.",
	"Why did the tomato blush? Because it saw the salad dressing.",
	"Did you hear the joke about the wandering nun? She was a roman catholic.",
	"What creature is smarter than a talking parrot? A spelling bee.",
	"I'll tell you what often gets over looked... garden fences.",
	"Why did the kid cross the playground? To get to the other slide.",
	"Why do birds fly south for the winter? Because it's too far to walk.",
	"What is a centipedes's favorite Beatle song?  I want to hold your hand, hand, hand, hand...",
	"My first time using an elevator was an uplifting experience. The second time let me down.",
	"To be Frank, I'd have to change my name.",
	"Slept like a log last night … woke up in the fireplace.",
	"What do you call a female snake. misssssssss ",
	"Why does a Moon-rock taste better than an Earth-rock? Because it's a little meteor.",
	"I thought my wife was joking when she said she'd leave me if I didn't stop signing \"I'm A Believer\"... Then I saw her face.",
	"I’m only familiar with 25 letters in the English language. I don’t know why.",
	"What do you call two barracuda fish?  A Pairacuda!",
	"What did the father tomato say to the baby tomato whilst on a family walk? Ketchup.",
	"Why is Peter Pan always flying? Because he Neverlands.",
	"What do you do on a remote island? Try and find the TV island it belongs to.",
	"Did you know that protons have mass? I didn't even know they were catholic.",
	"Dad I’m hungry’ … ‘Hi hungry I’m dad",
	"I was fired from the keyboard factory yesterday.  I wasn't putting in enough shifts.",
	"Whoever invented the knock-knock joke should get a no bell prize.",
	"Have you heard the story about the magic tractor? It drove down the road and turned into a field.",
	"When will the little snake arrive? I don't know but he won't be long...",
	"Why was Pavlov's beard so soft?  Because he conditioned it.",
	"Do I enjoy making courthouse puns? Guilty",
	"Why did the kid throw the clock out the window? He wanted to see time fly!",
	"Hear about the new restaurant called Karma? There’s no menu: You get what you deserve.",
	"Why couldn't the kid see the pirate movie? Because it was rated arrr!",
	"It was so cold yesterday my computer froze. My own fault though, I left too many windows open.",
	"Man, I really love my furniture... me and my recliner go way back.",
	"What did the traffic light say to the car as it passed? \"Don't look I'm changing!\"",
	"My son is studying to be a surgeon, I just hope he makes the cut.",
	"Why did the man run around his bed? Because he was trying to catch up on his sleep!",
	"What did one wall say to the other wall? I'll meet you at the corner!",
	"Sometimes I tuck my knees into my chest and lean forward.  That’s just how I roll.",
	"I once lost a banana at court but then I appealed. ",
	"Conjunctivitis.com – now that’s a site for sore eyes.",
	"I don't trust stairs. They're always up to something.",
	"What do you call two guys hanging out by your window? Kurt & Rod.",
	"Why was the robot angry? Because someone kept pressing his buttons!",
	"Which is the fastest growing city in the world? Dublin'",
	"What do you call a snake who builds houses? A boa constructor!",
	"Why did the sentence fail the driving test? It never came to a full stop.",
	"Some people eat light bulbs. They say it's a nice light snack.",
	"What's the difference between a rooster and a crow? A rooster can crow but a crow cannot rooster.",
	"I cut my finger chopping cheese, but I think that I may have grater problems.",
	"I got a reversible jacket for Christmas, I can't wait to see how it turns out.",
	"What do you get when you cross a pig and a pineapple? A porky pine",
	"Why did the banana go to the doctor? He was not \"peeling\" well.",
	"Never take advice from electrons. They are always negative.",
	"Why are oranges the smartest fruit? Because they are made to concentrate. ",
	"Why is it always hot in the corner of a room? Because a corner is 90 degrees.",
	"What did the beaver say to the tree? It's been nice gnawing you.",
	"How do you fix a damaged jack-o-lantern? You use a pumpkin patch.",
	"Why do cows not have toes? They lactose!",
	"What did the late tomato say to the early tomato? I’ll ketch up",
	"I have kleptomania, but when it gets bad, I take something for it.",
	"I used to be addicted to soap, but I'm clean now.",
	"When is a door not a door? When it's ajar.",
	"I made a belt out of watches once... It was a waist of time.",
	"How do you find Will Smith in the snow?  Look for fresh prints.",
	"My boss told me to have a good day... so I went home.",
	"Why do trees seem suspicious on sunny days? Dunno, they're just a bit shady.",
	"If at first you don't succeed, sky diving is not for you!",
	"I'd like to start a diet, but I've got too much on my plate right now.",
	"What did the drummer name her twin daughters? Anna One, Anna Two...",
	"What kind of music do mummy's like? Rap",
	"A book just fell on my head. I only have my shelf to blame.",
	"What did the dog say to the two trees? Bark bark.",
	"I've got a joke about vegetables for you... but it's a bit corny.",
	"Why can't your nose be 12 inches long? Because then it'd be a foot!",
	"Have you ever heard of a music group called Cellophane? They mostly wrap.",
	"What do you call a boy who stopped digging holes? Douglas.",
	"What did the mountain climber name his son? Cliff.",
	"Why should you never trust a pig with a secret? Because it's bound to squeal.",
	"Whiteboards ... are remarkable.",
	"What kind of dinosaur loves to sleep? A stega-snore-us.",
	"What has three letters and starts with gas? A Car.",
	"What kind of tree fits in your hand? A palm tree!",
	"I used to be addicted to the hokey pokey, but I turned myself around.",
	"How many tickles does it take to tickle an octopus? Ten-tickles!",
	"What musical instrument is found in the bathroom? A tuba toothpaste.",
	"My boss told me to attach two pieces of wood together... I totally nailed it!",
	"Recent survey revealed 6 out of 7 dwarf's aren't happy.",
	"What do you call corn that joins the army? Kernel.",
	"Why don't skeletons ride roller coasters? They don't have the stomach for it.",
	"Every night at 11:11, I make a wish that someone will come fix my broken clock.",
	"What's the difference between a guitar and a fish? You can tune a guitar but you can't \"tuna\" fish!",
	"Why don't sharks eat clowns?  Because they taste funny.",
	"Just read a few facts about frogs. They were ribbiting.",
	"Two satellites decided to get married. The wedding wasn't much, but the reception was incredible.",
	"What do you call a fish with no eyes? A fsh.",
	"My wife said I was immature. So I told her to get out of my fort.",
	"Why did the knife dress up in a suit? Because it wanted to look sharp",
	"I considered building the patio by myself. But I didn't have the stones.",
	"In my career as a lumberjack I cut down exactly 52,487 trees. I know because I kept a log.",
	"Why do bears have hairy coats? Fur protection.",
	"What did one snowman say to the other snow man? Do you smell carrot?",
	"Why do bees hum? Because they don't know the words.",
	"A magician was driving down the street and then he turned into a driveway.",
	"Don't trust atoms. They make up everything.",
	"What's a ninja's favorite type of shoes? Sneakers!",
	"Why did the tree go to the dentist? It needed a root canal.",
	"It was raining cats and dogs the other day. I almost stepped in a poodle.",
	"What do you call a bee that lives in America? A USB.",
	"I was wondering why the frisbee was getting bigger, then it hit me.",
	"A farmer had 297 cows, when he rounded them up, he found he had 300",
	"What's the difference between a hippo and a zippo? One is really heavy, the other is a little lighter.",
	"I’ve got this disease where I can’t stop making airport puns. The doctor says it terminal.",
	"Somebody stole my Microsoft Office and they're going to pay - you have my Word.",
	"I couldn't figure out how the seat belt worked. Then it just clicked.",
	"What do you call a dad that has fallen through the ice? A Popsicle.",
	"Bad at golf? Join the club.",
	"What do you call a pile of cats?  A Meowtain.",
	"Can a kangaroo jump higher than the Empire State Building? Of course. The Empire State Building can't jump.",
	"What do you give a sick lemon? Lemonaid.",
	"What do you call an old snowman? Water.",
	"I tried to milk a cow today, but was unsuccessful. Udder failure.",
	"What does a female snake use for support? A co-Bra!",
	"Child: Dad, make me a sandwich. Dad: Poof! You're a sandwich.",
	"which flower is most fierce? Dandelion",
	"Why are graveyards so noisy? Because of all the coffin.",
	"What kind of bagel can fly? A plain bagel.",
	"How many apples grow on a tree? All of them!",
	"What do you call a careful wolf? Aware wolf.",
	"I was just looking at my ceiling. Not sure if it’s the best ceiling in the world, but it’s definitely up there.",
	"“My Dog has no nose.” “How does he smell?” “Awful”",
	"What do you call a cow with no legs? Ground beef.",
	"Why are snake races so exciting? They're always neck and neck.",
	"As I suspected, someone has been adding soil to my garden. The plot thickens.",
	"It’s hard to explain puns to kleptomaniacs, because they take everything literally.",
	"Why did Dracula lie in the wrong coffin? He made a grave mistake.",
	"What did one plate say to the other plate? Dinner is on me!",
	"what do you call a dog that can do magic tricks? a labracadabrador",
	"Atheism is a non-prophet organisation.",
	"I tried to write a chemistry joke, but could never get a reaction.",
	"I gave my friend 10 puns hoping that one of them would make him laugh. Sadly, no pun in ten did.",
	"What do computers and air conditioners have in common? They both become useless when you open windows.",
	"Scientists finally did a study on forks. It's about tine!",
	"How do you steal a coat? You jacket.",
	"I’m reading a book on the history of glue – can’t put it down.",
	"Want to hear a joke about construction? Nah, I'm still working on it.",
	"Just watched a documentary about beavers… It was the best damn program I’ve ever seen.",
	"Did you hear about the kidnapping at school? It's ok, he woke up.",
	"You will never guess what Elsa did to the balloon. She let it go.",
	"Did you hear about the two thieves who stole a calendar? They each got six months.",
	"Waking up this morning was an eye-opening experience.",
	"They're making a movie about clocks. It's about time",
	"I’ve just been reading a book about anti-gravity, it’s impossible to put down!",
	"Archaeology really is a career in ruins.",
	"I was going to get a brain transplant, but I changed my mind",
	"I boiled a funny bone last night and had a laughing stock",
	"Why can't you use \"Beef stew\" as a password? Because it's not stroganoff.",
	"Animal Fact #25: Most bobcats are not named bob.",
	"What did the piece of bread say to the knife? Butter me up.",
	"The rotation of earth really makes my day.",
	"What's blue and not very heavy?  Light blue.",
	"Where did you learn to make ice cream? Sunday school.",
	"Coffee has a tough time at my house, every morning it gets mugged.",
	"A quick shoutout to all of the sidewalks out there... Thanks for keeping me off the streets.",
	"Where does Napoleon keep his armies? In his sleevies.",
	"People are making apocalypse jokes like there’s no tomorrow.",
	"What is the tallest building in the world? The library – it’s got the most stories!",
	"Why don't eggs tell jokes? They'd crack each other up",
	"I just broke my guitar. It's okay, I won't fret",
	"Where do hamburgers go to dance? The meat-ball.",
	"I invented a new word! Plagiarism!",
	"What do you call a cow with two legs? Lean beef.",
	"What did the big flower say to the littler flower? Hi, bud!",
	"Why was ten scared of seven? Because seven ate nine.",
	"I knew a guy who collected candy canes, they were all in mint condition",
	"Why do nurses carry around red crayons? Sometimes they need to draw blood.",
	"\"I'll call you later.\" Don't call me later, call me Dad.",
	"I don't trust sushi, there's something fishy about it.",
	"Breaking news! Energizer Bunny arrested – charged with battery.",
	"Can February march? No, but April may.",
	"Toasters were the first form of pop-up notifications.",
	"What is a witch's favorite subject in school? Spelling!",
	"Which side of the chicken has more feathers? The outside.",
	"Why are fish easy to weigh? Because they have their own scales.",
	"This morning I was wondering where the sun was, but then it dawned on me.",
	"Writing with a broken pencil is pointless.",
	"Why is it so windy inside an arena? All those fans.",
	"I've started telling everyone about the benefits of eating dried grapes. It's all about raisin awareness.",
	"Two peanuts were walking down the street. One was a salted",
	"What did the Zen Buddist say to the hotdog vendor? Make me one with everything.",
	"What did the digital clock say to the grandfather clock? Look, no hands!",
	"How was the snow globe feeling after the storm? A little shaken.",
	"Did you hear the one about the guy with the broken hearing aid? Neither did he.",
	"Did you hear about the campsite that got visited by Bigfoot? It got in tents.",
	"What did the ocean say to the beach? Thanks for all the sediment.",
	"What do you call a fly without wings? A walk.",
	"Why did the melons plan a big wedding? Because they cantaloupe!",
	"What do birds give out on Halloween? Tweets.",
	"I used to think I was indecisive, but now I'm not sure.",
	"Velcro… What a rip-off.",
	"What happens to a frog's car when it breaks down? It gets toad.",
	"I fear for the calendar, its days are numbered.\n",
	"I'm glad I know sign language, it's pretty handy.",
	"Where do sheep go to get their hair cut? The baa-baa shop.",
	"Our wedding was so beautiful, even the cake was in tiers.",
	"Why did the miner get fired from his job? He took it for granite...",
	"Why did the cookie cry? It was feeling crumby.",
	"Me and my mates are in a band called Duvet. We're a cover band.",
	"Where do you learn to make banana splits? At sundae school.",
	"What was a more important invention than the first telephone? The second one.",
	"What do you get when you cross a snowman with a vampire? Frostbite.",
	"Did you know crocodiles could grow up to 15 feet? But most just have 4.",
	"Why did the fireman wear red, white, and blue suspenders? To hold his pants up.",
	"I wanted to be a tailor but I didn't suit the job",
	"What do you call someone with no nose? Nobody knows.",
	"What do you call a criminal going down the stairs? Condescending",
	"What do you call a fat psychic? A four-chin teller.",
	"I used to be a banker, but I lost interest.",
	"Why can't a bicycle stand on its own? It's two-tired.",
	"What does a pirate pay for his corn? A buccaneer!",
	"Astronomers got tired watching the moon go around the earth for 24 hours. They decided to call it a day.",
	"I ate a clock yesterday. It was so time consuming.",
	"Two dyslexics walk into a bra.",
	"Milk is also the fastest liquid on earth – its pasteurized before you even see it",
	"Is the pool safe for diving? It deep ends.",
	"Why do scuba divers fall backwards into the water? Because if they fell forwards they’d still be in the boat.",
	"My wife told me to rub the herbs on the meat for better flavor. That's sage advice.",
	"How are false teeth like stars? They come out at night!",
	"What time did the man go to the dentist? Tooth hurt-y.",
	"How does a penguin build it’s house? Igloos it together.",
	"What is this movie about? It is about 2 hours long.",
	"Why are pirates called pirates? Because they arrr!",
	"How does a dyslexic poet write? Inverse.",
	"Don't tell secrets in corn fields. Too many ears around.",
	"What did the pirate say on his 80th birthday? Aye Matey!",
	"Whats a penguins favorite relative? Aunt Arctica.",
	"Never Trust Someone With Graph Paper...\r\n\r\nThey're always plotting something.",
	"What do you call an elephant that doesn’t matter? An irrelephant.",
	"What do you call a group of disorganized cats? A cat-tastrophe.",
	"What is bread's favorite number?  Leaven.",
	"Why can’t you hear a pterodactyl go to the bathroom? The p is silent.",
	"How do you teach a kid to climb stairs? There is a step by step guide.",
	"Why did the coffee file a police report? It got mugged.",
	"Mountains aren't just funny, they are hill areas",
	"I was going to learn how to juggle, but I didn't have the balls.",
	"Why was the strawberry sad? Its parents were in a jam.",
	"Why are ghosts bad liars? Because you can see right through them!",
	"Every machine in the coin factory broke down all of a sudden without explanation. It just doesn’t make any cents.",
	"When you have a bladder infection, urine trouble.",
	"What do you call a group of killer whales playing instruments? An Orca-stra.",
	"Geology rocks, but Geography is where it's at!",
	"Why does Han Solo like gum? It's chewy!",
	"Have you heard of the band 1023MB? They haven't got a gig yet.",
	"The urge to sing the Lion King song is just a whim away.",
	"I needed a password eight characters long so I picked Snow White and the Seven Dwarfs.",
	"I used to work in a shoe recycling shop. It was sole destroying.",
	"I used to hate facial hair, but then it grew on me.",
	"R.I.P. boiled water. You will be mist.",
	"The first time I got a universal remote control I thought to myself, \"This changes everything\"",
	"Why is the ocean always blue? Because the shore never waves back.",
	"Why did the man put his money in the freezer? He wanted cold hard cash!",
	"I decided to sell my Hoover… well it was just collecting dust.",
	"Why do ducks make great detectives? They always quack the case.",
	"What does a clock do when it's hungry? It goes back four seconds!",
	"What do I look like? A JOKE MACHINE!?",
	"What is a tornado's favorite game to play? Twister!",
	"You know that cemetery up the road? People are dying to get in there.",
	"Pie is $2.50 in Jamaica and $3.00 in The Bahamas. These are the pie-rates of the Caribbean.",
	"What do you call a fish wearing a bowtie? Sofishticated.",
	"Can I watch the TV? Dad: Yes, but don’t turn it on.",
	"What is worse then finding a worm in your Apple? Finding half a worm in your Apple.",
	"What do vegetarian zombies eat? Grrrrrainnnnnssss.",
	"\"I'm sorry.\" \"Hi sorry, I'm dad\"",
	"What is the hardest part about sky diving? The ground.",
	"How many seconds are in a year?\r\n12.\r\nJanuary 2nd, February 2nd, March 2nd, April 2nd.... etc",
	"I ordered a chicken and an egg from Amazon. I'll let you know.",
	"There's not really any training for garbagemen. They just pick things up as they go.",
	"I was shocked when I was diagnosed as colorblind... It came out of the purple.",
	"Where does astronauts hangout after work? At the spacebar.",
	"What do you call a bear with no teeth? A gummy bear!",
	"What do you call your friend who stands in a hole? Phil.",
	"What do you call a fake noodle? An impasta.",
	"The word queue is ironic. It's just q with a bunch of silent letters waiting in line.",
	"What do you call a droid that takes the long way around? R2 detour.",
	"What's the best thing about elevator jokes? They work on so many levels.",
	"Where do rabbits go after they get married? On a bunny-moon.",
	"Why do cows wear bells? Because their horns don't work.",
	"Two fish are in a tank, one turns to the other and says, \"how do you drive this thing?\"",
	"This is my step ladder. I never knew my real ladder.",
	"I was thinking about moving to Moscow but there is no point Russian into things.",
	"Why is it a bad idea to iron your four-leaf clover? Cause you shouldn't press your luck.",
	"I got an A on my origami assignment when I turned my paper into my teacher",
	"What did the fish say when it swam into a wall? Damn!",
	"I accidentally drank a bottle of invisible ink. Now I’m in hospital, waiting to be seen.",
	"Why does Waldo only wear stripes? Because he doesn't want to be spotted.",
	"My New Years resolution is to stop leaving things so late.",
	"Why did the scarecrow win an award? Because he was outstanding in his field.",
	"Americans can't switch from pounds to kilograms overnight. That would cause mass confusion.",
	"An apple a day keeps the bullies away. If you throw it hard enough.",
	"Why does Superman get invited to dinners? Because he is a Supperhero.",
	"Why is no one friends with Dracula? Because he's a pain in the neck.",
	"A man got hit in the head with a can of Coke, but he was alright because it was a soft drink.",
	"What is the leading cause of dry skin? Towels",
	"Where did Captain Hook get his hook? From a second hand store.",
	"I got fired from a florist, apparently I took too many leaves.",
	"Two silk worms had a race. They ended up in a tie.",
	"Where do young cows eat lunch? In the calf-ateria.",
	"How does a French skeleton say hello? Bone-jour.",
	"Why was the big cat disqualified from the race? Because it was a cheetah.",
	"What do prisoners use to call each other? Cell phones.",
	"What’s E.T. short for? He’s only got little legs.",
	"What kind of award did the dentist receive? A little plaque.",
	"Do you know where you can get chicken broth in bulk? The stock market.",
	"What's orange and sounds like a parrot? A Carrot.",
	"What do you get hanging from Apple trees? Sore arms.",
	"I thought about going on an all-almond diet. But that's just nuts.",
	"I don’t play soccer because I enjoy the sport. I’m just doing it for kicks.",
	"How do you organize a space party? You planet.",
}
