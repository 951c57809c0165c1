package server

// indexTemplateText is the markup of the range-selection form.
const indexTemplateText = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Ayah Grabber</title>
<style>
body { font-family: sans-serif; max-width: 40rem; margin: 3rem auto; padding: 0 1rem; }
label { display: block; margin-top: 1rem; }
input, select { padding: 0.4rem; margin-top: 0.25rem; width: 100%; box-sizing: border-box; }
button { margin-top: 1.5rem; padding: 0.5rem 1.5rem; }
.hint { color: #666; font-size: 0.85rem; }
</style>
</head>
<body>
<h1>Ayah Grabber</h1>
<p>Download a contiguous range of verses as a single audio file.</p>
<form method="post" action="/grab">
	<label>Start verse
		<input type="text" name="start" placeholder="2:255" required>
	</label>
	<label>End verse
		<input type="text" name="end" placeholder="2:257" required>
	</label>
	<label>Reciter
		<select name="reciter">
		{{- range $id, $name := .Reciters }}
			<option value="{{ $id }}"{{ if eq $id $.DefaultReciterID }} selected{{ end }}>{{ $name }}</option>
		{{- end }}
		</select>
	</label>
	<p class="hint">References use the form chapter:verse, e.g. 2:255. Ranges may cross chapter boundaries.</p>
	<button type="submit">Download</button>
</form>
</body>
</html>
`
